package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandleAppErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("%w: tenant", ErrValidation), http.StatusBadRequest, ErrCodeValidation},
		{fmt.Errorf("%w: update_unit", ErrOperationInProgress), http.StatusConflict, ErrCodeConflict},
		{fmt.Errorf("%w: 12", ErrUnitNotFound), http.StatusNotFound, ErrCodeNotFound},
		{fmt.Errorf("%w: boom", ErrMutationFailed), http.StatusBadGateway, ErrCodeUpstream},
		{errors.New("unexpected"), http.StatusInternalServerError, ErrCodeInternal},
		{&AppError{StatusCode: http.StatusTeapot, Code: "teapot", Message: "short and stout"}, http.StatusTeapot, "teapot"},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleAppError(rec, tc.err)
			require.Equal(t, tc.status, rec.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.Equal(t, tc.code, body.Code)
		})
	}
}

func TestJoinNonEmpty(t *testing.T) {
	require.Equal(t, "a, c", JoinNonEmpty(", ", " a ", "", "  ", "c"))
	require.Equal(t, "", JoinNonEmpty(", "))
}

func TestPtrVal(t *testing.T) {
	require.Equal(t, 3, Val(Ptr(3)))
	var s *string
	require.Equal(t, "", Val(s))
}

func TestLoggerAppNameHook(t *testing.T) {
	var buf bytes.Buffer
	t.Setenv("LOG_LEVEL", "debug")
	InitLoggerWithOutput("pm-dashboard-test", &buf)

	Logger.Debug("hello")
	require.True(t, strings.Contains(buf.String(), "[pm-dashboard-test] hello"))
}
