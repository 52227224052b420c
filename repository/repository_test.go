package repository

import (
	"testing"
	"time"

	"salon-backend/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Service{},
		&models.Appointment{},
		&models.Revenue{},
		&models.AdminSettings{},
	))

	return db
}

func strptr(s string) *string { return &s }

func TestUpsertClientCollapsesDuplicatePhones(t *testing.T) {
	repo := New(setupTestDB(t))

	first, err := repo.UpsertClient("Anna", "+1000", nil, nil)
	require.NoError(t, err)

	second, err := repo.UpsertClient("Anna Petrova", "+1000", strptr("anna@example.com"), nil)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Anna Petrova", second.Name)
	require.NotNil(t, second.Email)
	assert.Equal(t, "anna@example.com", *second.Email)

	var count int64
	require.NoError(t, repo.db.Model(&models.Client{}).Where("phone = ?", "+1000").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpsertClientKeepsFieldsWhenIncomingIsNil(t *testing.T) {
	repo := New(setupTestDB(t))

	_, err := repo.UpsertClient("Anna", "+1000", strptr("anna@example.com"), strptr("vip"))
	require.NoError(t, err)

	updated, err := repo.UpsertClient("Anna", "+1000", nil, nil)
	require.NoError(t, err)

	require.NotNil(t, updated.Email)
	assert.Equal(t, "anna@example.com", *updated.Email)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "vip", *updated.Notes)
}

func TestListActiveServicesHidesInactive(t *testing.T) {
	repo := New(setupTestDB(t))

	active, err := repo.CreateService(ServiceFields{Name: "Manicure", Price: 1000, Duration: 60})
	require.NoError(t, err)

	inactive, err := repo.CreateService(ServiceFields{Name: "Old Treatment", Price: 500, Duration: 30})
	require.NoError(t, err)
	require.NoError(t, repo.db.Model(inactive).Update("is_active", false).Error)

	services, err := repo.ListActiveServices(0, 100)
	require.NoError(t, err)

	require.Len(t, services, 1)
	assert.Equal(t, active.ID, services[0].ID)
	for _, svc := range services {
		assert.True(t, svc.IsActive)
	}
}

func TestUpdateServiceReplacesFields(t *testing.T) {
	repo := New(setupTestDB(t))

	created, err := repo.CreateService(ServiceFields{Name: "Manicure", Price: 1000, Duration: 60, Description: "Classic"})
	require.NoError(t, err)

	updated, err := repo.UpdateService(created.ID, ServiceFields{Name: "Gel Manicure", Price: 1200, Duration: 75, Description: "Gel polish"})
	require.NoError(t, err)

	assert.Equal(t, "Gel Manicure", updated.Name)
	assert.Equal(t, 1200.0, updated.Price)
	assert.Equal(t, 75, updated.Duration)
	assert.True(t, updated.IsActive)

	_, err = repo.UpdateService(9999, ServiceFields{Name: "x", Price: 1, Duration: 1})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func seedAppointment(t *testing.T, repo *Repository, phone string, serviceID uint, date time.Time, status string) *models.Appointment {
	t.Helper()

	client, err := repo.UpsertClient("Client "+phone, phone, nil, nil)
	require.NoError(t, err)

	appointment, err := repo.CreateAppointment(client.ID, serviceID, date, nil)
	require.NoError(t, err)

	if status != models.StatusPending {
		require.NoError(t, repo.db.Model(appointment).Update("status", status).Error)
	}
	return appointment
}

func TestListAppointmentsFilteredDateWindow(t *testing.T) {
	repo := New(setupTestDB(t))

	svc, err := repo.CreateService(ServiceFields{Name: "Haircut", Price: 800, Duration: 30})
	require.NoError(t, err)

	inside := seedAppointment(t, repo, "+1001", svc.ID,
		time.Date(2024, 1, 31, 23, 0, 0, 0, time.UTC), models.StatusPending)
	seedAppointment(t, repo, "+1002", svc.ID,
		time.Date(2024, 2, 1, 0, 0, 1, 0, time.UTC), models.StatusPending)

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)

	details, err := repo.ListAppointmentsFiltered("", &from, &to)
	require.NoError(t, err)

	require.Len(t, details, 1)
	assert.Equal(t, inside.ID, details[0].ID)
}

func TestListAppointmentsFilteredByStatus(t *testing.T) {
	repo := New(setupTestDB(t))

	svc, err := repo.CreateService(ServiceFields{Name: "Haircut", Price: 800, Duration: 30})
	require.NoError(t, err)

	date := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	confirmed := seedAppointment(t, repo, "+1001", svc.ID, date, models.StatusConfirmed)
	seedAppointment(t, repo, "+1002", svc.ID, date, models.StatusPending)

	details, err := repo.ListAppointmentsFiltered(models.StatusConfirmed, nil, nil)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, confirmed.ID, details[0].ID)

	// The sentinel "all" disables the status filter.
	all, err := repo.ListAppointmentsFiltered("all", nil, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestListAppointmentsByPhoneReturnsProjection(t *testing.T) {
	repo := New(setupTestDB(t))

	svc, err := repo.CreateService(ServiceFields{Name: "Coloring", Price: 2500, Duration: 120})
	require.NoError(t, err)

	seedAppointment(t, repo, "+2000", svc.ID, time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC), models.StatusPending)
	seedAppointment(t, repo, "+2000", svc.ID, time.Date(2024, 4, 8, 10, 0, 0, 0, time.UTC), models.StatusPending)
	seedAppointment(t, repo, "+3000", svc.ID, time.Date(2024, 4, 2, 10, 0, 0, 0, time.UTC), models.StatusPending)

	details, err := repo.ListAppointmentsByPhone("+2000")
	require.NoError(t, err)

	require.Len(t, details, 2)
	// Newest first
	assert.True(t, details[0].AppointmentDate.After(details[1].AppointmentDate))
	for _, d := range details {
		assert.Equal(t, "+2000", d.ClientPhone)
		assert.Equal(t, "Coloring", d.ServiceName)
		assert.Equal(t, 2500.0, d.ServicePrice)
	}
}

func TestComputeStatisticsEmptyStore(t *testing.T) {
	repo := New(setupTestDB(t))

	stats, err := repo.ComputeStatistics()
	require.NoError(t, err)

	assert.EqualValues(t, 0, stats.TotalAppointments)
	assert.EqualValues(t, 0, stats.CompletedAppointments)
	assert.EqualValues(t, 0, stats.PendingAppointments)
	assert.Equal(t, 0.0, stats.TotalRevenue)
	assert.Equal(t, 0.0, stats.MonthlyRevenue)
	assert.Empty(t, stats.PopularServices)
}

func TestComputeStatisticsCountsAndPopularServices(t *testing.T) {
	repo := New(setupTestDB(t))

	haircut, err := repo.CreateService(ServiceFields{Name: "Haircut", Price: 800, Duration: 30})
	require.NoError(t, err)
	manicure, err := repo.CreateService(ServiceFields{Name: "Manicure", Price: 1000, Duration: 60})
	require.NoError(t, err)

	date := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	completed := seedAppointment(t, repo, "+1001", haircut.ID, date, models.StatusCompleted)
	seedAppointment(t, repo, "+1002", haircut.ID, date, models.StatusPending)
	seedAppointment(t, repo, "+1003", manicure.ID, date, models.StatusPending)

	require.NoError(t, repo.db.Create(&models.Revenue{
		Date:           time.Now(),
		ServiceID:      haircut.ID,
		AppointmentID:  completed.ID,
		ServiceRevenue: 800,
		NetRevenue:     800,
	}).Error)

	stats, err := repo.ComputeStatistics()
	require.NoError(t, err)

	assert.EqualValues(t, 3, stats.TotalAppointments)
	assert.EqualValues(t, 1, stats.CompletedAppointments)
	assert.EqualValues(t, 2, stats.PendingAppointments)
	assert.Equal(t, 800.0, stats.TotalRevenue)
	assert.Equal(t, 800.0, stats.MonthlyRevenue)

	require.Len(t, stats.PopularServices, 2)
	assert.Equal(t, "Haircut", stats.PopularServices[0].Name)
	assert.EqualValues(t, 2, stats.PopularServices[0].Count)
}

func TestMonthlyRevenueExcludesEarlierMonths(t *testing.T) {
	repo := New(setupTestDB(t))

	require.NoError(t, repo.db.Create(&models.Revenue{
		Date:           time.Now().AddDate(0, -2, 0),
		ServiceRevenue: 500,
		NetRevenue:     500,
	}).Error)
	require.NoError(t, repo.db.Create(&models.Revenue{
		Date:           time.Now(),
		ServiceRevenue: 300,
		NetRevenue:     300,
	}).Error)

	stats, err := repo.ComputeStatistics()
	require.NoError(t, err)

	assert.Equal(t, 800.0, stats.TotalRevenue)
	assert.Equal(t, 300.0, stats.MonthlyRevenue)
}

func TestAdminSettingsSingleton(t *testing.T) {
	repo := New(setupTestDB(t))

	settings, err := repo.GetOrCreateAdminSettings()
	require.NoError(t, err)
	assert.Equal(t, "Beauty Salon", settings.BusinessName)
	assert.Equal(t, 24, settings.NotificationReminderHours)

	again, err := repo.GetOrCreateAdminSettings()
	require.NoError(t, err)
	assert.Equal(t, settings.ID, again.ID)

	updated, err := repo.UpdateAdminSettings(SettingsFields{
		BusinessName:              "Luxe Studio",
		BusinessPhone:             "+79990000000",
		NotificationReminderHours: 48,
	})
	require.NoError(t, err)
	assert.Equal(t, settings.ID, updated.ID)
	assert.Equal(t, "Luxe Studio", updated.BusinessName)
	assert.Equal(t, 48, updated.NotificationReminderHours)

	var count int64
	require.NoError(t, repo.db.Model(&models.AdminSettings{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateAdminSettingsInsertsWhenAbsent(t *testing.T) {
	repo := New(setupTestDB(t))

	settings, err := repo.UpdateAdminSettings(SettingsFields{
		BusinessName:              "Fresh Start",
		NotificationReminderHours: 12,
	})
	require.NoError(t, err)
	assert.NotZero(t, settings.ID)
	assert.Equal(t, "Fresh Start", settings.BusinessName)
}
