package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"inkwell/backend/internal/handler"
	"inkwell/backend/internal/model"
	"inkwell/backend/internal/service"
	svcmock "inkwell/backend/internal/service/mock"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserHandlerList(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := svcmock.NewMockUserService(ctrl)
	e := newTestServer(handler.NewUserHandler(svc).RegisterRoutes)

	svc.EXPECT().ListUsers(gomock.Any(), "writer", model.RoleAdmin, service.Page{Limit: 5}).
		Return(service.UserPage{Users: []model.User{testUser}, Total: 1}, nil)

	rec := doRequest(e, http.MethodGet, "/api/users?q=writer&role=admin&limit=5", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Users []map[string]any `json:"users"`
		Total int              `json:"total"`
	}
	decodeJSON(t, rec, &body)
	require.Equal(t, 1, body.Total)
	require.Equal(t, "42", body.Users[0]["id"])
}

func TestUserHandlerActsAsCurrentUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := svcmock.NewMockUserService(ctrl)
	e := newTestServer(handler.NewUserHandler(svc).RegisterRoutes)

	svc.EXPECT().DeleteUser(gomock.Any(), testUser.ID, testUser.ID).
		Return(fmt.Errorf("%w: cannot delete yourself", service.ErrForbidden))
	svc.EXPECT().UpdateRole(gomock.Any(), testUser.ID, int64(8), model.RoleAdmin).
		Return(model.User{ID: 8, Role: model.RoleAdmin}, nil)

	rec := doRequest(e, http.MethodDelete, "/api/users/42", "")
	requireError(t, rec, http.StatusForbidden, "cannot delete yourself")

	rec = doRequest(e, http.MethodPut, "/api/users/8/role", `{"role":"admin"}`)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestContactHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := svcmock.NewMockContactService(ctrl)
	h := handler.NewContactHandler(svc)
	e := newTestServer(func(g *echo.Group) {
		h.RegisterPublicRoutes(g)
		h.RegisterAdminRoutes(g.Group("/admin"))
	})

	svc.EXPECT().Submit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, in service.ContactInput) (model.ContactMessage, error) {
			require.Equal(t, "Ada", in.Name)
			require.Equal(t, "192.0.2.1", in.RemoteIP)
			return model.ContactMessage{ID: 1, Name: in.Name, Email: in.Email, Message: in.Message}, nil
		})
	handled := false
	svc.EXPECT().List(gomock.Any(), &handled, service.Page{}).Return([]model.ContactMessage{{ID: 1}}, nil)
	svc.EXPECT().MarkHandled(gomock.Any(), int64(1), true).Return(model.ContactMessage{ID: 1, Handled: true}, nil)

	rec := doRequest(e, http.MethodPost, "/api/contact", `{"name":"Ada","email":"ada@example.com","message":"Hi"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doRequest(e, http.MethodGet, "/api/admin/contact?handled=false", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, http.MethodPut, "/api/admin/contact/1/handled", `{"handled":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	decodeJSON(t, rec, &body)
	require.Equal(t, true, body["handled"])
}

func TestImportHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := svcmock.NewMockImportService(ctrl)
	e := newTestServer(handler.NewImportHandler(svc).RegisterRoutes)

	gomock.InOrder(
		svc.EXPECT().GetTask(testUser.ID).Return(nil),
		svc.EXPECT().StartImport(gomock.Any(), testUser.ID, "https://example.com/feed.xml").
			Return(&service.ImportTask{ID: "t1", Status: service.TaskRunning, Total: 3}, nil),
		svc.EXPECT().CancelTask(testUser.ID).Return(true),
	)

	rec := doRequest(e, http.MethodGet, "/api/import/status", "")
	require.JSONEq(t, `{"status":"idle"}`, rec.Body.String())

	rec = doRequest(e, http.MethodPost, "/api/import/feed", `{"url":"https://example.com/feed.xml"}`)
	require.Equal(t, http.StatusAccepted, rec.Code)
	var task service.ImportTask
	decodeJSON(t, rec, &task)
	require.Equal(t, "t1", task.ID)
	require.Equal(t, 3, task.Total)

	rec = doRequest(e, http.MethodDelete, "/api/import", "")
	require.JSONEq(t, `{"cancelled":true}`, rec.Body.String())
}

func TestSettingsHandlerTestAIReportsFailureInBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := svcmock.NewMockSettingsService(ctrl)
	e := newTestServer(handler.NewSettingsHandler(svc).RegisterRoutes)

	svc.EXPECT().TestAI(gomock.Any(), &service.AISettings{Provider: "openai", Model: "gpt-4o-mini"}).
		Return("", errors.New("401 invalid api key"))

	rec := doRequest(e, http.MethodPost, "/api/settings/ai/test", `{"model":"gpt-4o-mini"}`)
	requireError(t, rec, http.StatusBadRequest, "provider is required")

	rec = doRequest(e, http.MethodPost, "/api/settings/ai/test", `{"provider":"openai","model":"gpt-4o-mini"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"success":false,"error":"401 invalid api key"}`, rec.Body.String())
}

func TestSettingsHandlerUpdateReturnsMasked(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := svcmock.NewMockSettingsService(ctrl)
	e := newTestServer(handler.NewSettingsHandler(svc).RegisterRoutes)

	gomock.InOrder(
		svc.EXPECT().SetAISettings(gomock.Any(), &service.AISettings{Provider: "openai", APIKey: "sk-abcdefghijklmnop", Model: "gpt-4o"}).Return(nil),
		svc.EXPECT().GetAISettings(gomock.Any()).Return(&service.AISettings{Provider: "openai", APIKey: "sk-***nop", Model: "gpt-4o"}, nil),
	)

	rec := doRequest(e, http.MethodPut, "/api/settings/ai", `{"provider":"openai","apiKey":"sk-abcdefghijklmnop","model":"gpt-4o"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var body service.AISettings
	decodeJSON(t, rec, &body)
	require.Equal(t, "sk-***nop", body.APIKey)
}
