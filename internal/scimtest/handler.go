package scimtest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-scim-owner/internal/logger"
	"github.com/MKhiriev/go-scim-owner/internal/utils"
	"github.com/MKhiriev/go-scim-owner/models"
)

// Handler returns the chi router serving the directory.
func (d *Directory) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(d.withRecording)
	router.Use(d.withTraceID)
	router.Use(d.withLogging)

	router.Route("/scim/v2/enterprises/{enterprise}", func(r chi.Router) {
		r.Use(d.auth)
		r.Get("/Users", d.listUsers)
		r.Get("/Users/{id}", d.getUser)
		r.Patch("/Users/{id}", d.patchUser)
	})

	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not Found")
	})
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not Found")
	})

	return router
}

func (d *Directory) listUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	paged := query.Has("startIndex")
	startIndex := max(atoiDefault(query.Get("startIndex"), 1), 1)
	count := min(max(atoiDefault(query.Get("count"), MaxPageSize), 0), MaxPageSize)

	d.mu.Lock()
	status := d.probeFailure
	if paged {
		status = d.pageFailures[startIndex]
	}
	hang := paged && d.pageHangs[startIndex]
	total := len(d.users)
	from := min(startIndex-1, total)
	to := min(from+count, total)
	page := append([]models.ScimUser{}, d.users[from:to]...)
	d.mu.Unlock()

	if hang {
		<-r.Context().Done()
		return
	}
	if status != 0 {
		writeError(w, status, fmt.Sprintf("injected failure for startIndex %d", startIndex))
		return
	}

	_, _ = utils.WriteSCIM(w, http.StatusOK, models.ListResponse{
		Schemas:      []string{models.SchemaList},
		TotalResults: total,
		StartIndex:   startIndex,
		ItemsPerPage: len(page),
		Resources:    page,
	})
}

func (d *Directory) getUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	d.mu.Lock()
	status := d.userFailures[id]
	i := d.indexOf(id)
	var user models.ScimUser
	if i >= 0 {
		user = d.users[i]
	}
	d.mu.Unlock()

	if status != 0 {
		writeError(w, status, "injected failure for user "+id)
		return
	}
	if i < 0 {
		writeError(w, http.StatusNotFound, "Resource "+id+" not found")
		return
	}

	_, _ = utils.WriteSCIM(w, http.StatusOK, user)
}

func (d *Directory) patchUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch models.PatchRequest
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "Problems parsing JSON")
		return
	}
	roles, err := rolesFromPatch(patch)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	d.mu.Lock()
	status := d.patchFailures[id]
	i := d.indexOf(id)
	var user models.ScimUser
	if status == 0 && i >= 0 {
		d.users[i].Roles = roles
		if d.users[i].Meta == nil {
			d.users[i].Meta = &models.ScimMeta{ResourceType: "User"}
		}
		d.users[i].Meta.LastModified = d.now().UTC().Format(time.RFC3339)
		user = d.users[i]
	}
	d.mu.Unlock()

	if status != 0 {
		writeError(w, status, "injected failure patching user "+id)
		return
	}
	if i < 0 {
		writeError(w, http.StatusNotFound, "Resource "+id+" not found")
		return
	}

	_, _ = utils.WriteSCIM(w, http.StatusOK, user)
}

func rolesFromPatch(patch models.PatchRequest) ([]models.ScimRole, error) {
	hasSchema := false
	for _, s := range patch.Schemas {
		if s == models.SchemaPatchOp {
			hasSchema = true
		}
	}
	if !hasSchema {
		return nil, fmt.Errorf("missing schema %s", models.SchemaPatchOp)
	}
	if len(patch.Operations) == 0 {
		return nil, fmt.Errorf("no operations")
	}

	var roles []models.ScimRole
	for _, op := range patch.Operations {
		if !strings.EqualFold(op.Op, "replace") || op.Path != "roles" {
			return nil, fmt.Errorf("unsupported operation %s %s", op.Op, op.Path)
		}
		roles = op.Value
	}
	return roles, nil
}

func writeError(w http.ResponseWriter, status int, detail string) {
	_, _ = utils.WriteSCIM(w, status, models.ScimError{
		Schemas: []string{models.SchemaError},
		Status:  strconv.Itoa(status),
		Detail:  detail,
	})
}

func atoiDefault(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

// logFrom returns the request-scoped logger installed by withTraceID.
func logFrom(r *http.Request) *logger.Logger {
	return logger.FromRequest(r)
}
