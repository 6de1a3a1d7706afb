package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StatisticsPeriod string

const (
	PeriodDaily   StatisticsPeriod = "Daily"
	PeriodWeekly  StatisticsPeriod = "Weekly"
	PeriodMonthly StatisticsPeriod = "Monthly"
	PeriodYearly  StatisticsPeriod = "Yearly"
)

var StatisticsPeriods = []StatisticsPeriod{PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly}

func (p StatisticsPeriod) Valid() bool {
	for _, v := range StatisticsPeriods {
		if v == p {
			return true
		}
	}
	return false
}

type ServiceStatisticsModel struct {
	ID                         uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	ServiceID                  int              `gorm:"not null;index" json:"serviceId"`
	ServiceName                string           `gorm:"size:100;not null" json:"serviceName"`
	TotalAppointments          int              `gorm:"not null" json:"totalAppointments"`
	CompletedAppointments      int              `gorm:"not null" json:"completedAppointments"`
	CancelledAppointments      int              `gorm:"not null" json:"cancelledAppointments"`
	AverageProcessingTime      float64          `gorm:"not null" json:"averageProcessingTime"` // hours
	CustomerSatisfactionRating float64          `gorm:"type:decimal(3,2);not null" json:"customerSatisfactionRating"`
	Period                     StatisticsPeriod `gorm:"size:20;not null" json:"period"`
	StartDate                  time.Time        `gorm:"not null" json:"startDate"`
	EndDate                    time.Time        `gorm:"not null" json:"endDate"`
	CreatedAt                  time.Time        `gorm:"autoCreateTime" json:"createdAt"`
}

func (ServiceStatisticsModel) TableName() string {
	return "service_statistics"
}

func (m *ServiceStatisticsModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

type AppUsageStatisticsModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Date               time.Time `gorm:"not null;uniqueIndex" json:"date"`
	TotalUsers         int       `gorm:"not null" json:"totalUsers"`
	ActiveUsers        int       `gorm:"not null" json:"activeUsers"`
	NewRegistrations   int       `gorm:"not null" json:"newRegistrations"`
	AppointmentsBooked int       `gorm:"not null" json:"appointmentsBooked"`
	IssuesReported     int       `gorm:"not null" json:"issuesReported"`
	NewsViews          int       `gorm:"not null" json:"newsViews"`
	MostUsedService    *string   `gorm:"size:100" json:"mostUsedService,omitempty"`
	PeakUsageHour      *int      `json:"peakUsageHour,omitempty"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (AppUsageStatisticsModel) TableName() string {
	return "app_usage_statistics"
}

func (m *AppUsageStatisticsModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
