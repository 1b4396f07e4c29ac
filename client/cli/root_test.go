package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "stockroom", cmd.Use)
	assert.Contains(t, cmd.Long, "STOCKROOM_API_URL")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := [][]string{
		{"sales", "list"},
		{"sales", "delete"},
		{"sales", "invoice"},
		{"sales", "report"},
		{"products", "list"},
		{"products", "create"},
		{"products", "delete"},
		{"lookups", "list"},
		{"lookups", "create"},
		{"upload"},
	}

	for _, path := range commands {
		name := strings.Join(path, " ")
		t.Run(name, func(t *testing.T) {
			subCmd, _, err := cmd.Find(path)
			require.NoError(t, err, "Command %s should exist", name)
			require.NotNil(t, subCmd)
			assert.Equal(t, path[len(path)-1], subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestSalesListFlags(t *testing.T) {
	cmd := NewRootCommand()
	listCmd, _, err := cmd.Find([]string{"sales", "list"})
	require.NoError(t, err)

	assert.Equal(t, "1", listCmd.Flags().Lookup("page").DefValue)
	assert.Equal(t, "10", listCmd.Flags().Lookup("limit").DefValue)
	assert.Equal(t, "s", listCmd.Flags().Lookup("search").Shorthand)
}

// run executes the CLI against handler and returns stdout and the error.
func run(t *testing.T, handler http.Handler, args ...string) (string, error) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	t.Setenv("STOCKROOM_API_URL", srv.URL)
	t.Setenv("STOCKROOM_LOG_LEVEL", "error")
	t.Setenv("CLOUDINARY_CLOUD_NAME", "")
	t.Setenv("CLOUDINARY_UPLOAD_PRESET", "")

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "missing.env")}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func salesHandler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /sale", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "rice", r.URL.Query().Get("search"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"statusCode": 200,
			"message":    "Sales retrieved successfully",
			"data": []map[string]any{
				{"_id": "s1", "productName": "Basmati Rice", "productPrice": 12.5, "buyerName": "Ann", "quantity": 2, "totalPrice": 25, "date": "2024-03-01T00:00:00Z"},
			},
			"meta": map[string]int{"page": 1, "limit": 10, "total": 1, "totalPage": 1},
		})
	})
	mux.HandleFunc("GET /sale/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "s1" {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]any{"code": "not_found", "message": "sale not found"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"statusCode": 200,
			"message":    "Sale retrieved successfully",
			"data":       map[string]any{"_id": "s1", "productName": "Basmati Rice", "productPrice": 12.5, "buyerName": "Ann", "quantity": 2, "totalPrice": 25, "date": "2024-03-01T00:00:00Z"},
		})
	})
	mux.HandleFunc("DELETE /sale/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "s1" {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]any{"code": "not_found", "message": "sale not found"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"statusCode": 200,
			"message":    "Sale deleted successfully",
			"data":       map[string]any{"_id": "s1"},
		})
	})
	return mux
}

func TestSalesList(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "text",
			args:     []string{"sales", "list", "--search", "rice"},
			expected: []string{"Product Name", "Basmati Rice", "25.00", "2024-03-01", "page 1, 1 of 1 sales"},
		},
		{
			name:     "json",
			args:     []string{"--format", "json", "sales", "list", "-s", "rice"},
			expected: []string{`"status":"ok"`, `"_id":"s1"`, `"total":1`},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, salesHandler(t), tc.args...)

			require.NoError(t, err)
			for _, s := range tc.expected {
				assert.Contains(t, out, s)
			}
		})
	}
}

func TestSalesDelete(t *testing.T) {
	testCases := []struct {
		name             string
		id               string
		expectedOut      string
		expectedErr      string
		expectedExitCode int
	}{
		{
			name:        "success",
			id:          "s1",
			expectedOut: "Sale deleted successfully\n",
		},
		{
			name:             "not_found",
			id:               "s9",
			expectedErr:      "delete sale s9: api error: status 404: sale not found",
			expectedExitCode: ExitFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, salesHandler(t), "sales", "delete", tc.id)

			if tc.expectedErr != "" {
				require.Error(t, err)
				assert.EqualError(t, err, tc.expectedErr)
				assert.Equal(t, tc.expectedExitCode, ExitCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedOut, out)
		})
	}
}

func TestSalesInvoice(t *testing.T) {
	testCases := []struct {
		name             string
		id               string
		expected         []string
		expectedErr      string
		expectedExitCode int
	}{
		{
			name:     "text",
			id:       "s1",
			expected: []string{"Invoice", "Basmati Rice", "Ann"},
		},
		{
			name:             "not_found",
			id:               "s9",
			expectedErr:      "find sale s9: api error: status 404: sale not found",
			expectedExitCode: ExitFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, salesHandler(t), "sales", "invoice", tc.id)

			if tc.expectedErr != "" {
				require.Error(t, err)
				assert.EqualError(t, err, tc.expectedErr)
				assert.Equal(t, tc.expectedExitCode, ExitCode(err))
				return
			}
			require.NoError(t, err)
			for _, s := range tc.expected {
				assert.Contains(t, out, s)
			}
		})
	}
}

func TestLocalValidationSendsNothing(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{name: "bad_page", args: []string{"sales", "list", "--page", "0"}},
		{name: "product_without_image", args: []string{"products", "create", "--name", "Rice", "--price", "2", "--seller", "x", "--category", "y"}},
		{name: "unknown_lookup_kind", args: []string{"lookups", "create", "supplier", "Acme"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			})

			_, err := run(t, handler, tc.args...)

			require.Error(t, err)
			assert.Equal(t, ExitCommandError, ExitCode(err))
		})
	}
}

func TestInvalidFormat(t *testing.T) {
	_, err := run(t, http.NotFoundHandler(), "--format", "xml", "sales", "list")

	assert.EqualError(t, err, `invalid format "xml": must be one of [text json]`)
	assert.Equal(t, ExitCommandError, ExitCode(err))
}

func TestUploadNotConfigured(t *testing.T) {
	_, err := run(t, http.NotFoundHandler(), "upload", "rice.png")

	var cmdErr CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Contains(t, cmdErr.Suggestion, "CLOUDINARY_CLOUD_NAME")
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer

	PrintError(&buf, CommandError{Message: "list sales", Cause: assert.AnError, Suggestion: "check the API"})

	assert.Equal(t, "error: list sales: "+assert.AnError.Error()+"\nhint: check the API\n", buf.String())
}
