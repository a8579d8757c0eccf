package echoapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/ratiba/core"
	"github.com/trezcool/ratiba/core/group"
	"github.com/trezcool/ratiba/core/holiday"
	"github.com/trezcool/ratiba/core/schedule"
	dummymail "github.com/trezcool/ratiba/services/email/dummy"
	dummydb "github.com/trezcool/ratiba/storage/database/dummy"
)

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
	extra    interface{}
}

type testFixtures struct {
	holidayRepo holiday.Repository
	groupRepo   group.Repository
	rosterRepo  interface {
		group.RosterRepository
		schedule.RosterRepository
		SetStudents(classID int, students []group.Student)
		SetTeacher(t schedule.TeacherRef)
		SetAssignments(classID int, assignments []schedule.SessionAssignment)
	}
	planRepo schedule.Repository
}

func setup(t *testing.T) (Server, *testFixtures) {
	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	fix := &testFixtures{
		holidayRepo: dummydb.NewHolidayRepository(db),
		groupRepo:   dummydb.NewGroupRepository(db),
		rosterRepo:  dummydb.NewRosterRepository(db),
		planRepo:    dummydb.NewPlanRepository(db),
	}

	dummymail.ClearSentMessages()
	mailSvc := dummymail.NewService()
	logger := nopLogger{}
	srv := NewServer(&Options{
		Address:        "localhost:8000",
		DisableReqLogs: true,
		Logger:         logger,
		HolidaySvc:     holiday.NewService(fix.holidayRepo),
		GroupSvc:       group.NewService(fix.groupRepo, fix.rosterRepo, 12),
		ScheduleSvc:    schedule.NewService(fix.planRepo, fix.holidayRepo, fix.rosterRepo, fix.groupRepo, mailSvc, logger),
	})
	return srv, fix
}

type nopLogger struct{}

var _ core.Logger = (*nopLogger)(nil)

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return req, rec
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	return assert.ObjectsAreEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
