package handler

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/service"
	serviceMocks "portfolio/internal/service/mocks"
)

func TestRouting(t *testing.T) {
	ts := newTestSite()
	app := newTestApp(ts, new(serviceMocks.MockContactService), new(serviceMocks.MockAssetService), testAuth())

	t.Run("not found route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/non-existent", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "NOT_FOUND", res.Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "METHOD_NOT_ALLOWED", res.Error.Code)
	})

	t.Run("writes require a token", func(t *testing.T) {
		for _, tc := range []struct{ method, path string }{
			{http.MethodPost, "/api/skills"},
			{http.MethodPut, "/api/skills/" + uuid.NewString()},
			{http.MethodDelete, "/api/portfolios/" + uuid.NewString()},
			{http.MethodGet, "/api/contacts"},
			{http.MethodGet, "/api/assets"},
			{http.MethodPost, "/api/profiles/" + uuid.NewString() + "/resume"},
			{http.MethodPut, "/api/profiles/" + uuid.NewString() + "/resume-password"},
		} {
			resp, _ := app.Test(httptest.NewRequest(tc.method, tc.path, nil))
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, tc.method+" "+tc.path)

			var res errorPayload
			json.NewDecoder(resp.Body).Decode(&res)
			assert.Equal(t, "UNAUTHORIZED", res.Error.Code)
		}
	})
}

func TestCatalogRoutes(t *testing.T) {
	ts := newTestSite()
	auth := testAuth()
	app := newTestApp(ts, new(serviceMocks.MockContactService), new(serviceMocks.MockAssetService), auth)
	token := adminToken(t, auth)

	t.Run("public list", func(t *testing.T) {
		ts.skills.On("List", mock.Anything, repository.ListQuery{PageQuery: repository.PageQuery{Limit: 5, Offset: 10}}).
			Return(&repository.PageResult[model.Skill]{Items: []model.Skill{{ID: "s-1"}}, Total: 11}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/skills?limit=5&offset=10", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, float64(11), body["total"])
		assert.Len(t, body["data"], 1)
	})

	t.Run("retrieve missing", func(t *testing.T) {
		id := uuid.NewString()
		ts.courses.On("FindByID", mock.Anything, id).Return(nil, sql.ErrNoRows).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/courses/"+id, nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "course not found", res.Error.Message)
	})

	t.Run("create applies defaults", func(t *testing.T) {
		ts.skills.On("Create", mock.Anything, mock.MatchedBy(func(s *model.Skill) bool {
			return *s.Name == "Go" && *s.Rating == 4 && s.IsActive
		})).Return(&model.Skill{ID: "s-2"}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/skills", bytes.NewBufferString(`{"name":"Go"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", token)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		ts.skills.AssertExpectations(t)
	})

	t.Run("create rejects invalid fields", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/experiences", bytes.NewBufferString(`{"company_name":"Acme"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", token)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "VALIDATION_FAILED", res.Error.Code)
		assert.Contains(t, res.Error.Fields, "job_title")
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/videos", bytes.NewBufferString(`{`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", token)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("update and delete", func(t *testing.T) {
		id := uuid.NewString()
		ts.feedbacks.On("FindByID", mock.Anything, id).Return(&model.Feedback{ID: id}, nil).Once()
		ts.feedbacks.On("Update", mock.Anything, id, mock.Anything).Return(&model.Feedback{ID: id}, nil).Once()
		ts.feedbacks.On("Delete", mock.Anything, id).Return(nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/api/feedbacks/"+id, bytes.NewBufferString(`{"quote":"great"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", token)
		resp, _ := app.Test(req)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		req = httptest.NewRequest(http.MethodDelete, "/api/feedbacks/"+id, nil)
		req.Header.Set("Authorization", token)
		resp, _ = app.Test(req)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		ts.feedbacks.AssertExpectations(t)
	})

	t.Run("delete missing", func(t *testing.T) {
		id := uuid.NewString()
		ts.feedbacks.On("Delete", mock.Anything, id).Return(sql.ErrNoRows).Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/feedbacks/"+id, nil)
		req.Header.Set("Authorization", token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		ts.feedbacks.AssertExpectations(t)
	})

	t.Run("oversized limit is capped", func(t *testing.T) {
		q := repository.ListQuery{PageQuery: repository.PageQuery{Limit: 100, Offset: 0}}
		ts.courses.On("List", mock.Anything, q).Return(&repository.PageResult[model.Course]{}, nil).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/courses?limit=100000000", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		ts.courses.AssertExpectations(t)
	})

	t.Run("invalid id", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/my-contacts/42", nil))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestProfileRoutes(t *testing.T) {
	ts := newTestSite()
	auth := testAuth()
	app := newTestApp(ts, new(serviceMocks.MockContactService), new(serviceMocks.MockAssetService), auth)
	token := adminToken(t, auth)
	id := uuid.NewString()

	t.Run("overview", func(t *testing.T) {
		ts.profiles.On("Get", mock.Anything, id).Return(&model.Profile{ID: id, FirstName: "Ada"}, nil).Once()
		all := repository.ListQuery{ActiveOnly: true}
		ts.educations.On("List", mock.Anything, all).Return(&repository.PageResult[model.Education]{Items: []model.Education{{ID: "e"}}}, nil).Once()
		ts.experiences.On("List", mock.Anything, all).Return(&repository.PageResult[model.Experience]{}, nil).Once()
		ts.leaderships.On("List", mock.Anything, all).Return(&repository.PageResult[model.Leadership]{}, nil).Once()
		ts.courses.On("List", mock.Anything, all).Return(&repository.PageResult[model.Course]{}, nil).Once()
		ts.skills.On("List", mock.Anything, all).Return(&repository.PageResult[model.Skill]{}, nil).Once()
		ts.portfolios.On("List", mock.Anything, all).Return(&repository.PageResult[model.Portfolio]{}, nil).Once()
		ts.myContacts.On("List", mock.Anything, all).Return(&repository.PageResult[model.MyContact]{}, nil).Once()
		ts.feedbacks.On("List", mock.Anything, all).Return(&repository.PageResult[model.Feedback]{}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/profiles/"+id, nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body service.ProfileOverview
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "Ada", body.Profile.FirstName)
		assert.Equal(t, 1, body.Counts["education"])
	})

	t.Run("create passes the password separately", func(t *testing.T) {
		ts.profiles.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Profile) bool {
			return p.FirstName == "Ada" && p.ResumePasswordHash == ""
		}), "hunter2").Return(&model.Profile{ID: id}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/profiles",
			bytes.NewBufferString(`{"first_name":"Ada","password":"hunter2"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", token)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		ts.profiles.AssertExpectations(t)
	})

	t.Run("set resume password", func(t *testing.T) {
		ts.profiles.On("SetResumePassword", mock.Anything, id, "n3w").Return(nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/api/profiles/"+id+"/resume-password", bytes.NewBufferString(`{"password":"n3w"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", token)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		assert.Equal(t, "no-store", resp.Header.Get("Cache-Control"))
	})

	t.Run("upload resume rejected", func(t *testing.T) {
		body, ct := multipartBody(t, "resume", "cv.pdf", []byte("not a pdf"))
		ts.profiles.On("UploadResume", mock.Anything, id, mock.Anything).
			Return(nil, &service.ValidationError{Fields: map[string]string{"resume": "Upload a valid PDF file."}}).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/profiles/"+id+"/resume", body)
		req.Header.Set("Content-Type", ct)
		req.Header.Set("Authorization", token)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "Upload a valid PDF file.", res.Error.Fields["resume"])
	})

	t.Run("update", func(t *testing.T) {
		ts.profiles.On("Update", mock.Anything, id, mock.Anything).Return(&model.Profile{ID: id}, nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/api/profiles/"+id, bytes.NewBufferString(`{"first_name":"Ada"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", token)
		resp, _ := app.Test(req)

		require.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
