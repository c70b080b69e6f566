package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/edusuite/attendance-api/internal/dto"
	"github.com/edusuite/attendance-api/internal/handler"
	"github.com/edusuite/attendance-api/internal/service"
	"github.com/edusuite/attendance-api/internal/utils"
)

type mockAttendanceService struct {
	lastQuery  dto.AttendanceQuery
	lastMark   dto.MarkAttendanceRequest
	lastUnmark dto.UnmarkAttendanceRequest
	rows       []dto.ReconciledAttendanceRow
	record     dto.AttendanceRecordResponse
	listErr    error
	markErr    error
	unmarkErr  error
}

func (m *mockAttendanceService) List(_ context.Context, query dto.AttendanceQuery) ([]dto.ReconciledAttendanceRow, error) {
	m.lastQuery = query
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.rows, nil
}

func (m *mockAttendanceService) Mark(_ context.Context, req dto.MarkAttendanceRequest) (dto.AttendanceRecordResponse, error) {
	m.lastMark = req
	if m.markErr != nil {
		return dto.AttendanceRecordResponse{}, m.markErr
	}
	return m.record, nil
}

func (m *mockAttendanceService) Unmark(_ context.Context, req dto.UnmarkAttendanceRequest) error {
	m.lastUnmark = req
	return m.unmarkErr
}

func newAttendanceApp(svc service.AttendanceService) *fiber.App {
	app := fiber.New()
	handler.NewAttendanceHandler(svc, zerolog.New(io.Discard)).Register(app.Group("/api/attendance"))
	return app
}

func decodeResponse(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, json.Unmarshal(body, out))
}

func TestAttendanceHandlerListPassesFilters(t *testing.T) {
	day := "5"
	present := true
	svc := &mockAttendanceService{rows: []dto.ReconciledAttendanceRow{{StudentID: 1, Name: "Student A", Day: &day, Present: &present}}}
	app := newAttendanceApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/attendance?level=200&month=3&year=2024&departmentId=abc&studentName=Ng", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.Equal(t, dto.AttendanceQuery{
		StudentName:  "Ng",
		Level:        "200",
		DepartmentID: "abc",
		Month:        "3",
		Year:         "2024",
	}, svc.lastQuery)

	var response struct {
		Success bool                          `json:"success"`
		Data    []dto.ReconciledAttendanceRow `json:"data"`
	}
	decodeResponse(t, resp, &response)
	require.True(t, response.Success)
	require.Len(t, response.Data, 1)
	require.Equal(t, "Student A", response.Data[0].Name)
}

func TestAttendanceHandlerMarkSuccess(t *testing.T) {
	svc := &mockAttendanceService{record: dto.AttendanceRecordResponse{ID: 7, StudentID: 1, Day: "10", Present: true}}
	app := newAttendanceApp(svc)

	present := true
	payload := dto.MarkAttendanceRequest{StudentID: 1, Day: "10", Month: 3, Year: 2024, Present: &present}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/attendance", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, uint(1), svc.lastMark.StudentID)

	var response struct {
		Success bool                         `json:"success"`
		Data    dto.AttendanceRecordResponse `json:"data"`
	}
	decodeResponse(t, resp, &response)
	require.True(t, response.Success)
	require.Equal(t, uint(7), response.Data.ID)
}

func TestAttendanceHandlerMarkErrors(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		statusCode int
	}{
		{name: "student missing", err: service.ErrStudentNotFound, statusCode: fiber.StatusNotFound},
		{name: "storage", err: errors.New("boom"), statusCode: fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockAttendanceService{markErr: tc.err}
			app := newAttendanceApp(svc)

			present := true
			body, err := json.Marshal(dto.MarkAttendanceRequest{StudentID: 1, Day: "10", Month: 3, Year: 2024, Present: &present})
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/api/attendance", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			require.Equal(t, tc.statusCode, resp.StatusCode)

			var response utils.APIResponse
			decodeResponse(t, resp, &response)
			require.False(t, response.Success)
			require.NotEmpty(t, response.Message)
		})
	}
}

func TestAttendanceHandlerUnmark(t *testing.T) {
	cases := []struct {
		name       string
		target     string
		err        error
		statusCode int
	}{
		{name: "by id", target: "?id=7", statusCode: fiber.StatusOK},
		{name: "by triple", target: "?studentId=1&day=5&date=3/2024", statusCode: fiber.StatusOK},
		{name: "missing target", target: "", err: service.ErrDeleteTargetRequired, statusCode: fiber.StatusBadRequest},
		{name: "bad date", target: "?studentId=1&day=5&date=bad", err: service.ErrInvalidDateFormat, statusCode: fiber.StatusBadRequest},
		{name: "not found", target: "?id=404", err: service.ErrAttendanceNotFound, statusCode: fiber.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockAttendanceService{unmarkErr: tc.err}
			app := newAttendanceApp(svc)

			req := httptest.NewRequest(http.MethodDelete, "/api/attendance"+tc.target, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			require.Equal(t, tc.statusCode, resp.StatusCode)
		})
	}
}
