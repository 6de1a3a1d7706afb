package database

import (
	"fmt"

	"gorm.io/gorm"

	irModel "alisto_backend/internals/features/civic/issue_reports/model"
	ppModel "alisto_backend/internals/features/civic/public_projects/model"
	newsModel "alisto_backend/internals/features/content/news/model"
	tsModel "alisto_backend/internals/features/content/tourist_spots/model"
	infoModel "alisto_backend/internals/features/information/model"
	apptModel "alisto_backend/internals/features/services/appointments/model"
	csModel "alisto_backend/internals/features/services/city_services/model"
	srModel "alisto_backend/internals/features/services/service_requests/model"
	authModel "alisto_backend/internals/features/users/auth/model"
	uModel "alisto_backend/internals/features/users/user/model"
)

// Models lists every table in dependency order (parents first).
func Models() []any {
	return []any{
		&uModel.UserModel{},
		&authModel.UserSessionModel{},

		&csModel.ServiceCategoryModel{},
		&csModel.CityServiceModel{},
		&apptModel.AppointmentModel{},
		&srModel.CivilRegistryRequestModel{},
		&srModel.BusinessPermitRequestModel{},
		&srModel.HealthServiceRequestModel{},
		&srModel.EducationServiceRequestModel{},
		&srModel.SocialServiceRequestModel{},
		&srModel.TaxServiceRequestModel{},

		&irModel.IssueReportModel{},
		&irModel.IssuePhotoModel{},
		&irModel.IssueUpdateModel{},
		&ppModel.PublicProjectModel{},

		&newsModel.NewsArticleModel{},
		&tsModel.TouristSpotModel{},

		&infoModel.EmergencyHotlineModel{},
		&infoModel.SystemConfigurationModel{},
		&infoModel.AnnouncementModel{},
		&infoModel.NotificationModel{},
		&infoModel.AuditLogModel{},
		&infoModel.FileUploadModel{},
		&infoModel.ServiceFeedbackModel{},
		&infoModel.AppFeedbackModel{},
		&infoModel.ServiceStatisticsModel{},
		&infoModel.AppUsageStatisticsModel{},
	}
}

// AutoMigrate creates or alters all tables, indexes and foreign keys.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
