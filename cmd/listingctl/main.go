// cmd/listingctl/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/listingdesk/listingdesk/internal/config"
	"github.com/listingdesk/listingdesk/internal/model"
	"github.com/listingdesk/listingdesk/internal/repository"
	"github.com/listingdesk/listingdesk/internal/service"
)

var (
	dbConnString string
	actorID      string
	orgType      string
	reason       string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbConnString, "db", "d", "", "Database connection string (defaults to DB_* environment)")

	orgsCmd.PersistentFlags().StringVarP(&actorID, "actor", "a", "", "Acting admin user id (recorded in the audit trail)")
	orgsCmd.PersistentFlags().StringVarP(&orgType, "type", "t", "", "Organization type: sponsor, issuer, or exchange")
	suspendCmd.Flags().StringVarP(&reason, "reason", "r", "", "Reason for the suspension (required)")

	orgsCmd.AddCommand(pendingCmd)
	orgsCmd.AddCommand(approveCmd)
	orgsCmd.AddCommand(suspendCmd)
	orgsCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(orgsCmd)
}

var rootCmd = &cobra.Command{
	Use:   "listingctl",
	Short: "listingctl administers the listing platform approval workflow",
	Long:  `listingctl lists pending organizations, approves or suspends them, and inspects the approval audit trail.`,
}

var orgsCmd = &cobra.Command{
	Use:   "orgs",
	Short: "Manage organization approvals",
}

var pendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List organizations waiting for approval",
	Run: func(cmd *cobra.Command, args []string) {
		svc, ctx, cancel := approvalService()
		defer cancel()

		orgs, err := svc.ListPendingOrganizations(ctx)
		if err != nil {
			log.Fatalf("Failed to list pending organizations: %v", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTYPE\tNAME\tCONTACT\tREGISTERED")
		for _, org := range orgs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				org.ID, org.OrgType, org.Name, org.ContactEmail,
				org.CreatedAt.Format(time.RFC3339))
		}
		w.Flush()
	},
}

var approveCmd = &cobra.Command{
	Use:   "approve [organization-id]",
	Short: "Approve an organization",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		org := transition(args[0], model.OrgStatusActive, nil)
		fmt.Printf("Approved %s (%s), status now %s\n", org.Name, org.ID, org.Status)
	},
}

var suspendCmd = &cobra.Command{
	Use:   "suspend [organization-id]",
	Short: "Suspend (or reject) an organization",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if reason == "" {
			log.Fatal("A reason is required when suspending")
		}
		org := transition(args[0], model.OrgStatusSuspended, &reason)
		fmt.Printf("Suspended %s (%s)\n", org.Name, org.ID)
	},
}

var historyCmd = &cobra.Command{
	Use:   "history [organization-id]",
	Short: "Show the approval audit trail for an organization",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		orgID, err := uuid.Parse(args[0])
		if err != nil {
			log.Fatalf("Invalid organization id: %v", err)
		}

		svc, ctx, cancel := approvalService()
		defer cancel()

		records, err := svc.ApprovalHistory(ctx, orgID)
		if err != nil {
			log.Fatalf("Failed to load approval history: %v", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "WHEN\tNEW STATUS\tCHANGED BY\tREASON")
		for _, rec := range records {
			r := ""
			if rec.Reason != nil {
				r = *rec.Reason
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				rec.CreatedAt.Format(time.RFC3339), rec.NewStatus, rec.ChangedByID, r)
		}
		w.Flush()
	},
}

func transition(rawOrgID string, newStatus model.OrganizationStatus, reason *string) *model.Organization {
	orgID, err := uuid.Parse(rawOrgID)
	if err != nil {
		log.Fatalf("Invalid organization id: %v", err)
	}
	actor, err := uuid.Parse(actorID)
	if err != nil {
		log.Fatalf("Invalid or missing --actor id: %v", err)
	}
	if !model.ValidOrgType(model.OrganizationType(orgType)) {
		log.Fatalf("Invalid or missing --type: %q", orgType)
	}

	svc, ctx, cancel := approvalService()
	defer cancel()

	org, err := svc.UpdateOrganizationStatus(ctx, service.UpdateOrganizationStatusInput{
		OrganizationID:   orgID,
		OrganizationType: model.OrganizationType(orgType),
		NewStatus:        newStatus,
		Reason:           reason,
		ActingUserID:     actor,
	})
	if err != nil {
		log.Fatalf("Status update failed: %v", err)
	}
	return org
}

func approvalService() (*service.ApprovalService, context.Context, context.CancelFunc) {
	dsn := dbConnString
	if dsn == "" {
		dsn = config.Load().DSN()
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	svc := service.NewApprovalService(
		repository.NewOrganizationRepository(db),
		repository.NewUserRepository(db),
		repository.NewApprovalHistoryRepository(db),
		nil, // no email notifications from the CLI
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	return svc, ctx, cancel
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
