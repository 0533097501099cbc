package employees_test

import (
	"fmt"
	"log/slog"
	"os"
	"testing"

	"github.com/UnknownOlympus/employee-api/internal/metrics"
	"github.com/UnknownOlympus/employee-api/internal/models"
	"github.com/UnknownOlympus/employee-api/internal/repository"
	"github.com/UnknownOlympus/employee-api/internal/services/employees"
	mocks "github.com/UnknownOlympus/employee-api/mock"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tamathecxder/randomail"
)

func newEmployee() models.Employee {
	return models.Employee{
		FirstName: "Test",
		LastName:  "User",
		Salary:    42000,
		Age:       33,
		JobTitle:  "qa",
		Email:     randomail.GenerateRandomEmail(),
	}
}

func TestNewStaff(t *testing.T) {
	t.Parallel()

	mockRepo := mocks.NewEmployeeRepoIface(t)

	s := employees.NewStaff(slog.Default(), mockRepo, metrics.NewMetrics(prometheus.NewRegistry()))

	assert.NotNil(t, s)
}

func TestListEmployees(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	t.Run("should return repository employees", func(t *testing.T) {
		t.Parallel()

		mockRepo := mocks.NewEmployeeRepoIface(t)
		staffService := employees.NewStaff(logger, mockRepo, metrics.NewMetrics(prometheus.NewRegistry()))
		expected := []models.Employee{newEmployee(), newEmployee()}

		mockRepo.On("ListEmployees", mock.Anything).Return(expected, nil).Once()

		actual, err := staffService.ListEmployees(t.Context())

		require.NoError(t, err)
		assert.Equal(t, expected, actual)
	})

	t.Run("should wrap repository error", func(t *testing.T) {
		t.Parallel()

		mockRepo := mocks.NewEmployeeRepoIface(t)
		staffService := employees.NewStaff(logger, mockRepo, metrics.NewMetrics(prometheus.NewRegistry()))

		mockRepo.On("ListEmployees", mock.Anything).Return(nil, assert.AnError).Once()

		_, err := staffService.ListEmployees(t.Context())

		require.ErrorIs(t, err, assert.AnError)
		require.EqualError(t, err, "failed to list employees: "+assert.AnError.Error())
	})
}

func TestGetEmployee(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	t.Run("should return existing employee", func(t *testing.T) {
		t.Parallel()

		mockRepo := mocks.NewEmployeeRepoIface(t)
		staffService := employees.NewStaff(logger, mockRepo, metrics.NewMetrics(prometheus.NewRegistry()))
		expected := newEmployee()
		expected.UUID = uuid.New()

		mockRepo.On("GetEmployeeByUUID", mock.Anything, expected.UUID).Return(expected, nil).Once()

		actual, err := staffService.GetEmployee(t.Context(), expected.UUID)

		require.NoError(t, err)
		assert.Equal(t, expected, actual)
	})

	t.Run("should pass not found through", func(t *testing.T) {
		t.Parallel()

		mockRepo := mocks.NewEmployeeRepoIface(t)
		staffService := employees.NewStaff(logger, mockRepo, metrics.NewMetrics(prometheus.NewRegistry()))
		identifier := uuid.New()
		notFound := fmt.Errorf("%w with uuid: %s", repository.ErrEmployeeNotFound, identifier)

		mockRepo.On("GetEmployeeByUUID", mock.Anything, identifier).Return(models.Employee{}, notFound).Once()

		_, err := staffService.GetEmployee(t.Context(), identifier)

		require.ErrorIs(t, err, repository.ErrEmployeeNotFound)
		assert.Equal(t, notFound.Error(), err.Error())
	})

	t.Run("should wrap unexpected error", func(t *testing.T) {
		t.Parallel()

		mockRepo := mocks.NewEmployeeRepoIface(t)
		staffService := employees.NewStaff(logger, mockRepo, metrics.NewMetrics(prometheus.NewRegistry()))
		identifier := uuid.New()

		mockRepo.On("GetEmployeeByUUID", mock.Anything, identifier).Return(models.Employee{}, assert.AnError).Once()

		_, err := staffService.GetEmployee(t.Context(), identifier)

		require.ErrorContains(t, err, "failed to get employee")
		require.NotErrorIs(t, err, repository.ErrEmployeeNotFound)
	})
}

func TestCreateEmployee(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	t.Run("should save a new employee", func(t *testing.T) {
		t.Parallel()

		mockRepo := mocks.NewEmployeeRepoIface(t)
		testMetrics := metrics.NewMetrics(prometheus.NewRegistry())
		staffService := employees.NewStaff(logger, mockRepo, testMetrics)
		input := newEmployee()
		saved := input
		saved.UUID = uuid.New()

		mockRepo.On("SaveEmployee", mock.Anything, input).Return(saved, nil).Once()
		mockRepo.On("CountEmployees", mock.Anything).Return(3, nil).Once()

		created, err := staffService.CreateEmployee(t.Context(), input)

		require.NoError(t, err)
		assert.Equal(t, saved, created)
		assert.InDelta(t, 1, testutil.ToFloat64(testMetrics.EmployeesCreated), 0)
		assert.InDelta(t, 3, testutil.ToFloat64(testMetrics.EmployeesStored), 0)
	})

	t.Run("should pass already exists through", func(t *testing.T) {
		t.Parallel()

		mockRepo := mocks.NewEmployeeRepoIface(t)
		testMetrics := metrics.NewMetrics(prometheus.NewRegistry())
		staffService := employees.NewStaff(logger, mockRepo, testMetrics)
		input := newEmployee()
		input.UUID = uuid.New()
		conflict := fmt.Errorf("%w: %s", repository.ErrEmployeeAlreadyExists, input.UUID)

		mockRepo.On("SaveEmployee", mock.Anything, input).Return(models.Employee{}, conflict).Once()

		_, err := staffService.CreateEmployee(t.Context(), input)

		require.ErrorIs(t, err, repository.ErrEmployeeAlreadyExists)
		assert.InDelta(t, 0, testutil.ToFloat64(testMetrics.EmployeesCreated), 0)
		mockRepo.AssertNotCalled(t, "CountEmployees", mock.Anything)
	})

	t.Run("should return error when failed to save employee", func(t *testing.T) {
		t.Parallel()

		mockRepo := mocks.NewEmployeeRepoIface(t)
		staffService := employees.NewStaff(logger, mockRepo, metrics.NewMetrics(prometheus.NewRegistry()))
		input := newEmployee()

		mockRepo.On("SaveEmployee", mock.Anything, input).Return(models.Employee{}, assert.AnError).Once()

		_, err := staffService.CreateEmployee(t.Context(), input)

		require.Error(t, err)
		require.ErrorContains(t, err, "failed to save new employee 'Test User'")
	})

	t.Run("should keep created employee when gauge refresh fails", func(t *testing.T) {
		t.Parallel()

		mockRepo := mocks.NewEmployeeRepoIface(t)
		staffService := employees.NewStaff(logger, mockRepo, metrics.NewMetrics(prometheus.NewRegistry()))
		input := newEmployee()
		saved := input
		saved.UUID = uuid.New()

		mockRepo.On("SaveEmployee", mock.Anything, input).Return(saved, nil).Once()
		mockRepo.On("CountEmployees", mock.Anything).Return(0, assert.AnError).Once()

		created, err := staffService.CreateEmployee(t.Context(), input)

		require.NoError(t, err)
		assert.Equal(t, saved.UUID, created.UUID)
	})
}

func TestSyncGauge(t *testing.T) {
	t.Parallel()

	mockRepo := mocks.NewEmployeeRepoIface(t)
	testMetrics := metrics.NewMetrics(prometheus.NewRegistry())
	staffService := employees.NewStaff(slog.Default(), mockRepo, testMetrics)

	mockRepo.On("CountEmployees", mock.Anything).Return(2, nil).Once()

	staffService.SyncGauge(t.Context())

	assert.InDelta(t, 2, testutil.ToFloat64(testMetrics.EmployeesStored), 0)
}
