package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	checkVerificationHandler "github.com/rusunawa-id/booking-service/internal/api/handlers/check_verification"
	"github.com/rusunawa-id/booking-service/internal/domain"
	"github.com/rusunawa-id/booking-service/internal/eligibility"
	checkVerification "github.com/rusunawa-id/booking-service/internal/usecase/check_verification"
)

func VerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Evaluate booking eligibility from a document set",
		Long: `Reads tenant documents as a JSON array of {"id","docTypeId","status"} and prints the
verification verdict. Use --documents - to read from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("documents")
			tenantType, _ := cmd.Flags().GetString("tenant-type")
			student, _ := cmd.Flags().GetBool("student")

			docs, err := loadDocuments(cmd, path)
			if err != nil {
				return err
			}

			category := domain.CategoryFromTypeName(tenantType)
			if student {
				category = domain.CategoryStudent
			}

			verdict := eligibility.Evaluate(docs, category)

			resp := checkVerificationHandler.FromUseCaseResponse(&checkVerification.Response{
				Category: category,
				Verdict:  verdict,
			})
			if err := writeJSON(cmd, resp); err != nil {
				return fmt.Errorf("failed to write verdict: %v", err)
			}

			return nil
		},
	}

	cmd.Flags().String("documents", "", "Path to documents JSON file, - for stdin")
	cmd.Flags().String("tenant-type", "", "Tenant type name, \"mahasiswa\" marks a student")
	cmd.Flags().Bool("student", false, "Treat tenant as student regardless of tenant type")

	return cmd
}
