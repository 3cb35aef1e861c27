package catalogfeed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"github.com/yungbote/supplycart-backend/internal/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	require.NoError(t, err)
	return log
}

func TestDecodeRecordsBareArray(t *testing.T) {
	body := []byte(`[
		{"id":"itm-1","name":"Apples","price":10,"supplierId":"sup-1"},
		{"id":"itm-2","name":"Flour","unit_price":"4.5","vendor_id":"sup-1"}
	]`)
	records, err := DecodeRecords(body)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "itm-1", records[0].ExternalID)
	require.Equal(t, 4.5, records[1].Price)
	require.Equal(t, "sup-1", records[1].SupplierID)
}

func TestDecodeRecordsWrapperObject(t *testing.T) {
	body := []byte(`{"items":[{"id":"itm-1","name":"Apples","price":10}]}`)
	records, err := DecodeRecords(body)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "Apples", records[0].Name)
}

func TestDecodeRecordsSkipsUnusableEntries(t *testing.T) {
	body := []byte(`[{"name":"no id"},{"id":"ok","name":"good","price":1},42]`)
	records, err := DecodeRecords(body)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "ok", records[0].ExternalID)
}

func TestErrorMessageCoercesNonJSON(t *testing.T) {
	require.Equal(t, "<html>Bad Gateway</html>", ErrorMessage([]byte("<html>Bad Gateway</html>")))
	require.Equal(t, "boom", ErrorMessage([]byte(`{"error":"boom"}`)))
	require.Equal(t, "not found", ErrorMessage([]byte(`{"message":"not found"}`)))
	require.Equal(t, "upstream request failed", ErrorMessage(nil))
}

func TestErrorMessageTruncatesOnRuneBoundary(t *testing.T) {
	body := []byte(strings.Repeat("é", 150)) // 300 bytes, 2 per rune
	msg := ErrorMessage(body)
	require.True(t, utf8.ValidString(msg))
	require.LessOrEqual(t, len(msg), 200)
	require.Equal(t, strings.Repeat("é", 100), msg)
}

func TestFetchAllCombinesFeeds(t *testing.T) {
	first := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"a","name":"A","price":1,"supplierId":"s1"}]`))
	}))
	defer first.Close()
	second := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[{"id":"b","name":"B","price":2,"supplierId":"s2"}]}`))
	}))
	defer second.Close()

	client, err := NewClient(testLogger(t), first.URL+","+second.URL)
	require.NoError(t, err)

	records, err := client.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
}

func TestFetchAllSurfacesUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>oops</html>"))
	}))
	defer srv.Close()

	client, err := NewClient(testLogger(t), srv.URL)
	require.NoError(t, err)

	_, err = client.FetchAll(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "502")
	require.Contains(t, err.Error(), "oops")
}

func TestNewClientRequiresURLs(t *testing.T) {
	_, err := NewClient(testLogger(t), " , ")
	require.Error(t, err)
}
