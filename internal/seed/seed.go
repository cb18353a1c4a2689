package seed

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	appModels "github.com/nandan/studenthub/internal/app/models"
	appRepos "github.com/nandan/studenthub/internal/app/repositories"
	"github.com/nandan/studenthub/internal/pkg/apperrors"
	"github.com/nandan/studenthub/internal/pkg/auth"
	"github.com/nandan/studenthub/internal/pkg/identifier"
	"github.com/nandan/studenthub/internal/pkg/logger"
)

const (
	defaultInstitution = "Demo Institute of Technology"
	defaultAdminEmail  = "admin@studenthub.app"
	// Default credential for the seeded admin; change it after first login.
	defaultAdminPassword = "admin123"
)

// CreateDefaultData seeds a demo college and a default admin account so a
// fresh instance is usable immediately. Every step tolerates existing data.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool) error {
	collegeRepo := appRepos.NewCollegeRepository(dbPool)
	adminRepo := appRepos.NewAdminRepository(dbPool)

	logger.Info().Msg("Checking/Creating default data (college, admin account)...")
	var finalErr error

	adminID := identifier.New(defaultInstitution)

	college := &appModels.College{
		CollegeID: uuid.NewString(),
		Name:      defaultInstitution,
		Code:      "DEMOIT",
		Address:   "Not specified",
		Departments: []appModels.Department{
			{Name: "Computer Science", Code: "CS"},
			{Name: "Electronics", Code: "EC"},
		},
		CreatedBy: adminID,
	}
	if err := collegeRepo.Create(ctx, college); err != nil {
		if !errors.Is(err, apperrors.ErrCollegeAlreadyExists) {
			logger.Error().Err(err).Msg("Error creating default college")
			finalErr = errors.Join(finalErr, err)
		}
	}

	hashed, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		return errors.Join(finalErr, err)
	}

	admin := &appModels.Admin{
		AdminID:     adminID,
		Name:        "Default Admin",
		Email:       defaultAdminEmail,
		Password:    hashed,
		Institution: defaultInstitution,
		Department:  "Administration",
		Role:        string(appModels.RoleAdmin),
	}
	if err := adminRepo.Create(ctx, admin); err != nil {
		if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			logger.Error().Err(err).Msg("Error creating default admin")
			finalErr = errors.Join(finalErr, err)
		}
	} else {
		logger.Info().Str("email", defaultAdminEmail).Msg("Default admin account created")
	}

	return finalErr
}
