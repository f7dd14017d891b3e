package service_test

import (
	"context"
	"strings"
	"testing"

	"inkwell/backend/internal/repository"
	"inkwell/backend/internal/repository/testutil"
	"inkwell/backend/internal/service"

	"github.com/stretchr/testify/require"
)

func TestContactService_SubmitAndHandle(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewContactService(repository.NewContactRepository(db))
	ctx := context.Background()

	msg, err := svc.Submit(ctx, service.ContactInput{
		Name:     " Ada ",
		Email:    "Ada@Example.com",
		Subject:  "Pricing",
		Message:  "Do you offer team plans?",
		RemoteIP: "203.0.113.7",
	})
	require.NoError(t, err)
	require.Equal(t, "Ada", msg.Name)
	require.Equal(t, "ada@example.com", msg.Email)
	require.NotNil(t, msg.RemoteIP)
	require.False(t, msg.Handled)

	open := false
	list, err := svc.List(ctx, &open, service.Page{})
	require.NoError(t, err)
	require.Len(t, list, 1)

	handled, err := svc.MarkHandled(ctx, msg.ID, true)
	require.NoError(t, err)
	require.True(t, handled.Handled)

	list, err = svc.List(ctx, &open, service.Page{})
	require.NoError(t, err)
	require.Empty(t, list)

	list, err = svc.List(ctx, nil, service.Page{})
	require.NoError(t, err)
	require.Len(t, list, 1)

	_, err = svc.MarkHandled(ctx, 12345, true)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestContactService_Submit_Validation(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewContactService(repository.NewContactRepository(db))
	ctx := context.Background()

	valid := service.ContactInput{Name: "Ada", Email: "ada@example.com", Message: "Hi"}

	cases := map[string]func(in *service.ContactInput){
		"missing name":     func(in *service.ContactInput) { in.Name = " " },
		"long name":        func(in *service.ContactInput) { in.Name = strings.Repeat("a", 101) },
		"long subject":     func(in *service.ContactInput) { in.Subject = strings.Repeat("s", 201) },
		"missing message":  func(in *service.ContactInput) { in.Message = "" },
		"long message":     func(in *service.ContactInput) { in.Message = strings.Repeat("m", 5001) },
		"bad email":        func(in *service.ContactInput) { in.Email = "ada" },
		"display name too": func(in *service.ContactInput) { in.Email = "Ada <ada@example.com>" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := valid
			mutate(&in)
			_, err := svc.Submit(ctx, in)
			require.ErrorIs(t, err, service.ErrInvalid)
		})
	}
}
