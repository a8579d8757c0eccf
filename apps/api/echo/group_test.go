package echoapi

import (
	"net/http"
	"testing"

	"github.com/trezcool/ratiba/core/group"
)

func seedClass(t *testing.T, fix *testFixtures, classID int, students ...group.Student) {
	t.Helper()
	fix.rosterRepo.SetStudents(classID, students)
}

func Test_groupApi_initialize(t *testing.T) {
	srv, fix := setup(t)

	seedClass(t, fix, 1,
		group.Student{ID: 1, FirstName: "Amani", LastName: "Kazadi"},
		group.Student{ID: 2, FirstName: "Bahati", LastName: "Ilunga"},
		group.Student{ID: 3, FirstName: "Choni", LastName: "Mutombo"},
		group.Student{ID: 4, FirstName: "Dja", LastName: "Banza"},
	)

	tests := []httpTest{
		{
			name:     "count too low",
			path:     "/v1/classes/1/groups",
			body:     []byte(`{"group_count": 1}`),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"group_count": "group_count must be 2 or greater"}),
		},
		{
			name:     "count too high",
			path:     "/v1/classes/1/groups",
			body:     []byte(`{"group_count": 5}`),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"group_count": "group_count must be 4 or less"}),
		},
		{
			name:     "bad class id",
			path:     "/v1/classes/lol/groups",
			body:     []byte(`{"group_count": 2}`),
			wantCode: http.StatusNotFound,
		},
		{
			name: "ok",
			path: "/v1/classes/1/groups",
			body: []byte(`{"group_count": 2}`),
			// sorted by (last, first) then sliced: [Banza, Ilunga], [Kazadi, Mutombo]
			wantCode: http.StatusCreated,
			wantData: marchallObj(t, []group.Group{
				{ID: 0, Students: []group.Student{}},
				{ID: 1, Students: []group.Student{
					{ID: 4, FirstName: "Dja", LastName: "Banza"},
					{ID: 2, FirstName: "Bahati", LastName: "Ilunga"},
				}},
				{ID: 2, Students: []group.Student{
					{ID: 1, FirstName: "Amani", LastName: "Kazadi"},
					{ID: 3, FirstName: "Choni", LastName: "Mutombo"},
				}},
			}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, tt.path, tt.body)
			srv.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_groupApi_query(t *testing.T) {
	srv, fix := setup(t)

	t.Run("no groups yet", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/classes/1/groups")
		srv.ServeHTTP(rec, req)
		tt := httpTest{
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: group.ErrNoGroups.Error()}),
		}
		checkCodeAndData(t, tt, rec)
	})

	groups := []group.Group{
		{ID: 0, Students: []group.Student{}},
		{ID: 1, Students: []group.Student{{ID: 1, FirstName: "Amani", LastName: "Kazadi"}}},
		{ID: 2, Students: []group.Student{}},
	}
	if err := fix.groupRepo.SaveGroups(1, groups, false); err != nil {
		t.Fatalf("SaveGroups() failed: %v", err)
	}

	t.Run("ok", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/classes/1/groups")
		srv.ServeHTTP(rec, req)
		tt := httpTest{
			wantCode: http.StatusOK,
			wantData: marchallObj(t, groups),
		}
		checkCodeAndData(t, tt, rec)
	})
}

func Test_groupApi_moveAndRemove(t *testing.T) {
	srv, fix := setup(t)

	amani := group.Student{ID: 1, FirstName: "Amani", LastName: "Kazadi"}
	bahati := group.Student{ID: 2, FirstName: "Bahati", LastName: "Ilunga"}
	groups := []group.Group{
		{ID: 0, Students: []group.Student{}},
		{ID: 1, Students: []group.Student{amani}},
		{ID: 2, Students: []group.Student{bahati}},
	}
	if err := fix.groupRepo.SaveGroups(1, groups, false); err != nil {
		t.Fatalf("SaveGroups() failed: %v", err)
	}

	tests := []httpTest{
		{
			name:     "move to pool rejected",
			method:   http.MethodPut,
			path:     "/v1/classes/1/groups/move",
			body:     []byte(`{"student_id": 1, "target_group_id": 0}`),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"target_group_id": "this field is required"}),
		},
		{
			name:     "unknown group",
			method:   http.MethodPut,
			path:     "/v1/classes/1/groups/move",
			body:     []byte(`{"student_id": 1, "target_group_id": 9}`),
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: group.ErrGroupNotFound.Error()}),
		},
		{
			name:     "unknown student",
			method:   http.MethodPut,
			path:     "/v1/classes/1/groups/move",
			body:     []byte(`{"student_id": 9, "target_group_id": 2}`),
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: group.ErrStudentNotFound.Error()}),
		},
		{
			name:     "move ok",
			method:   http.MethodPut,
			path:     "/v1/classes/1/groups/move",
			body:     []byte(`{"student_id": 1, "target_group_id": 2}`),
			wantCode: http.StatusOK,
			wantData: marchallObj(t, []group.Group{
				{ID: 0, Students: []group.Student{}},
				{ID: 1, Students: []group.Student{}},
				{ID: 2, Students: []group.Student{bahati, amani}},
			}),
		},
		{
			name:     "remove ok",
			method:   http.MethodPut,
			path:     "/v1/classes/1/groups/remove",
			body:     []byte(`{"student_id": 2}`),
			wantCode: http.StatusOK,
			wantData: marchallObj(t, []group.Group{
				{ID: 0, Students: []group.Student{bahati}},
				{ID: 1, Students: []group.Student{}},
				{ID: 2, Students: []group.Student{amani}},
			}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			srv.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_groupApi_moveIntoFullGroup(t *testing.T) {
	srv, fix := setup(t)

	full := group.Group{ID: 1, Students: make([]group.Student, 0, 12)}
	for i := 1; i <= 12; i++ {
		full.Students = append(full.Students, group.Student{ID: i, FirstName: "S", LastName: "S"})
	}
	groups := []group.Group{
		{ID: 0, Students: []group.Student{}},
		full,
		{ID: 2, Students: []group.Student{{ID: 13, FirstName: "Choni", LastName: "Mutombo"}}},
	}
	if err := fix.groupRepo.SaveGroups(1, groups, true); err != nil {
		t.Fatalf("SaveGroups() failed: %v", err)
	}

	req, rec := newRequest(http.MethodPut, "/v1/classes/1/groups/move", []byte(`{"student_id": 13, "target_group_id": 1}`))
	srv.ServeHTTP(rec, req)
	tt := httpTest{
		wantCode: http.StatusConflict,
		wantData: marchallObj(t, httpErr{Error: "target group is full"}),
	}
	checkCodeAndData(t, tt, rec)

	// nothing moved
	after, err := fix.groupRepo.QueryGroupsByClass(1)
	if err != nil {
		t.Fatalf("QueryGroupsByClass() failed: %v", err)
	}
	if len(after[2].Students) != 1 || len(after[1].Students) != 12 {
		t.Error("move into a full group must not disturb memberships")
	}
}

func Test_groupApi_changeCount(t *testing.T) {
	srv, fix := setup(t)

	amani := group.Student{ID: 1, FirstName: "Amani", LastName: "Kazadi"}
	bahati := group.Student{ID: 2, FirstName: "Bahati", LastName: "Ilunga"}
	choni := group.Student{ID: 3, FirstName: "Choni", LastName: "Mutombo"}

	t.Run("auto assignment rebalances evenly", func(t *testing.T) {
		groups := []group.Group{
			{ID: 0, Students: []group.Student{}},
			{ID: 1, Students: []group.Student{choni, amani}},
			{ID: 2, Students: []group.Student{bahati}},
		}
		if err := fix.groupRepo.SaveGroups(1, groups, false); err != nil {
			t.Fatalf("SaveGroups() failed: %v", err)
		}

		req, rec := newRequest(http.MethodPut, "/v1/classes/1/groups/count", []byte(`{"group_count": 3}`))
		srv.ServeHTTP(rec, req)
		tt := httpTest{
			wantCode: http.StatusOK,
			wantData: marchallObj(t, []group.Group{
				{ID: 0, Students: []group.Student{}},
				{ID: 1, Students: []group.Student{bahati}},
				{ID: 2, Students: []group.Student{amani}},
				{ID: 3, Students: []group.Student{choni}},
			}),
		}
		checkCodeAndData(t, tt, rec)
	})

	t.Run("manual assignment preserves placement", func(t *testing.T) {
		groups := []group.Group{
			{ID: 0, Students: []group.Student{}},
			{ID: 1, Students: []group.Student{choni, amani}},
			{ID: 2, Students: []group.Student{}},
			{ID: 3, Students: []group.Student{bahati}},
		}
		if err := fix.groupRepo.SaveGroups(2, groups, true); err != nil {
			t.Fatalf("SaveGroups() failed: %v", err)
		}

		req, rec := newRequest(http.MethodPut, "/v1/classes/2/groups/count", []byte(`{"group_count": 2}`))
		srv.ServeHTTP(rec, req)
		tt := httpTest{
			wantCode: http.StatusOK,
			wantData: marchallObj(t, []group.Group{
				{ID: 0, Students: []group.Student{bahati}},
				{ID: 1, Students: []group.Student{choni, amani}},
				{ID: 2, Students: []group.Student{}},
			}),
		}
		checkCodeAndData(t, tt, rec)
	})
}
