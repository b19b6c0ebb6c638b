package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/listingdesk/listingdesk/internal/domain"
	"github.com/listingdesk/listingdesk/internal/model"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func storedOrg() *model.Organization {
	return &model.Organization{
		ID:           uuid.New(),
		Name:         "Acme Capital",
		OrgType:      model.OrgTypeIssuer,
		Status:       model.OrgStatusPending,
		ContactEmail: "ops@acme.example",
		CreatedByID:  uuid.New(),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func TestOrganizationRepositoryFindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrganizationRepository(db)
	org := storedOrg()

	rows := sqlmock.NewRows([]string{"id", "name", "org_type", "status", "contact_email", "created_by_id"}).
		AddRow(org.ID, org.Name, string(org.OrgType), string(org.Status), org.ContactEmail, org.CreatedByID)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "organizations"`)).
		WithArgs(org.ID, 1).
		WillReturnRows(rows)

	got, err := repo.FindByID(context.Background(), org.ID)
	require.NoError(t, err)
	assert.Equal(t, org.ID, got.ID)
	assert.Equal(t, model.OrgTypeIssuer, got.OrgType)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrganizationRepositoryFindByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrganizationRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "organizations"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrOrganizationNotFound)
}

func TestOrganizationRepositoryFindByIDAndTypeMismatch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrganizationRepository(db)
	org := storedOrg()

	rows := sqlmock.NewRows([]string{"id", "name", "org_type", "status", "contact_email", "created_by_id"}).
		AddRow(org.ID, org.Name, string(org.OrgType), string(org.Status), org.ContactEmail, org.CreatedByID)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "organizations"`)).
		WillReturnRows(rows)

	_, err := repo.FindByIDAndType(context.Background(), org.ID, model.OrgTypeExchange)
	assert.ErrorIs(t, err, domain.ErrOrganizationTypeMismatch)
}

func TestTransitionStatusCommitsAllWrites(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrganizationRepository(db)

	org := storedOrg()
	org.Status = model.OrgStatusActive
	creatorID := org.CreatedByID
	org.AdminUserID = &creatorID

	rec := &model.ApprovalHistoryRecord{
		OrganizationID:   org.ID,
		OrganizationType: org.OrgType,
		NewStatus:        model.OrgStatusActive,
		ChangedByID:      uuid.New(),
	}
	link := &model.OrganizationUser{
		OrganizationID: org.ID,
		UserID:         creatorID,
		Role:           "admin",
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "organizations" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "approval_history"`)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "id"}).AddRow(time.Now(), uuid.New()))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "organization_users"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))
	mock.ExpectCommit()

	err := repo.TransitionStatus(context.Background(), org, rec, link)
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransitionStatusWithoutAdminLink(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrganizationRepository(db)

	org := storedOrg()
	org.Status = model.OrgStatusSuspended
	reason := "failed verification"
	rec := &model.ApprovalHistoryRecord{
		OrganizationID:   org.ID,
		OrganizationType: org.OrgType,
		NewStatus:        model.OrgStatusSuspended,
		ChangedByID:      uuid.New(),
		Reason:           &reason,
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "organizations" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "approval_history"`)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "id"}).AddRow(time.Now(), uuid.New()))
	mock.ExpectCommit()

	err := repo.TransitionStatus(context.Background(), org, rec, nil)
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransitionStatusRollsBackOnAuditFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrganizationRepository(db)

	org := storedOrg()
	org.Status = model.OrgStatusActive
	rec := &model.ApprovalHistoryRecord{
		OrganizationID:   org.ID,
		OrganizationType: org.OrgType,
		NewStatus:        model.OrgStatusActive,
		ChangedByID:      uuid.New(),
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "organizations" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "approval_history"`)).
		WillReturnError(errors.New("insert failed"))
	mock.ExpectRollback()

	err := repo.TransitionStatus(context.Background(), org, rec, nil)
	assert.ErrorIs(t, err, domain.ErrPartialWrite)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByStatusOrdersOldestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrganizationRepository(db)

	first := storedOrg()
	second := storedOrg()

	rows := sqlmock.NewRows([]string{"id", "name", "org_type", "status", "contact_email", "created_by_id"}).
		AddRow(first.ID, first.Name, string(first.OrgType), string(first.Status), first.ContactEmail, first.CreatedByID).
		AddRow(second.ID, second.Name, string(second.OrgType), string(second.Status), second.ContactEmail, second.CreatedByID)

	mock.ExpectQuery(`SELECT \* FROM "organizations" WHERE status = \$1 ORDER BY created_at ASC`).
		WithArgs(string(model.OrgStatusPending)).
		WillReturnRows(rows)

	orgs, err := repo.FindByStatus(context.Background(), model.OrgStatusPending)
	require.NoError(t, err)
	require.Len(t, orgs, 2)
	assert.Equal(t, first.ID, orgs[0].ID)
	assert.Equal(t, second.ID, orgs[1].ID)
}
