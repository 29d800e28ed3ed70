package database

import (
	"github.com/rajnish018/portfolio-admin-backend/models"
	"gorm.io/gorm"
)

type Database struct {
	adminAccountRepo   *AdminAccountRepo
	projectRepo        *ProjectRepo
	skillRepo          *SkillRepo
	educationRepo      *EducationRepo
	certificationRepo  *CertificationRepo
	contactMessageRepo *ContactMessageRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		adminAccountRepo:   NewAdminAccountRepo(db),
		projectRepo:        NewProjectRepo(db),
		skillRepo:          NewSkillRepo(db),
		educationRepo:      NewEducationRepo(db),
		certificationRepo:  NewCertificationRepo(db),
		contactMessageRepo: NewContactMessageRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) AdminAccountRepo() *AdminAccountRepo {
	return d.adminAccountRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) EducationRepo() *EducationRepo {
	return d.educationRepo
}

func (d Database) CertificationRepo() *CertificationRepo {
	return d.certificationRepo
}

func (d Database) ContactMessageRepo() *ContactMessageRepo {
	return d.contactMessageRepo
}

// Migrate declares every collection plus the backstop constraints (unique
// skill name, NOT NULL required fields) at the persistence layer.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.AdminAccount{},
		&models.Skill{},
		&models.Project{},
		&models.Education{},
		&models.Certification{},
		&models.ContactMessage{},
	)
}
