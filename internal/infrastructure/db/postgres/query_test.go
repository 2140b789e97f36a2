package postgres

import (
	"strings"
	"testing"

	"github.com/veterinario/clinic-system/internal/core/ports"
)

const listOrdering = "ORDER BY c.fecha DESC, c.hora DESC"

func TestListQuery_AllScopesOrderNewestFirst(t *testing.T) {
	for _, tc := range []struct {
		name      string
		filter    ports.ListAppointmentsFilter
		wantWhere string
		wantArgs  int
	}{
		{
			name:   "admin sees all",
			filter: ports.ListAppointmentsFilter{Scope: ports.ScopeAll},
		},
		{
			name:      "client scoped to owned",
			filter:    ports.ListAppointmentsFilter{Scope: ports.ScopeOwnedBy, UserID: 7},
			wantWhere: "WHERE c.cliente_id = $1",
			wantArgs:  1,
		},
		{
			name:      "doctor scoped to assigned",
			filter:    ports.ListAppointmentsFilter{Scope: ports.ScopeAssignedTo, UserID: 2},
			wantWhere: "WHERE c.doctor_id = $1",
			wantArgs:  1,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			query, args := listQuery(tc.filter)

			if !strings.HasSuffix(query, listOrdering) {
				t.Fatalf("query does not end with %q:\n%s", listOrdering, query)
			}
			if tc.wantWhere == "" {
				if strings.Contains(query, "WHERE") {
					t.Fatalf("unscoped query has a WHERE clause:\n%s", query)
				}
			} else if !strings.Contains(query, tc.wantWhere) {
				t.Fatalf("query missing %q:\n%s", tc.wantWhere, query)
			}
			if len(args) != tc.wantArgs {
				t.Fatalf("args = %v, want %d", args, tc.wantArgs)
			}
		})
	}
}

func TestFindActiveUserQuery_CaseInsensitiveAndActiveOnly(t *testing.T) {
	if !strings.Contains(findActiveUserQuery, "LOWER(email) = LOWER($1)") {
		t.Fatalf("email comparison is case-sensitive:\n%s", findActiveUserQuery)
	}
	if !strings.Contains(findActiveUserQuery, "activo = TRUE") {
		t.Fatalf("query does not restrict to active users:\n%s", findActiveUserQuery)
	}
	if !strings.Contains(findActiveUserQuery, "rol = $2") {
		t.Fatalf("query does not restrict by role:\n%s", findActiveUserQuery)
	}
}
