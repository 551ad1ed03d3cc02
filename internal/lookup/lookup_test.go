package lookup_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tms/internal/domain"
	"tms/internal/lookup"
)

func TestPincodeClient_Found(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pincode/400001", r.URL.Path)
		_, _ = w.Write([]byte(`[{"Message":"Number of pincode(s) found:2","Status":"Success","PostOffice":[
			{"Name":"Fort","District":"Mumbai","State":"Maharashtra","Country":"India"},
			{"Name":"Stock Exchange","District":"Mumbai","State":"Maharashtra","Country":"India"}]}]`))
	}))
	defer srv.Close()

	got, err := lookup.NewPincodeClient(srv.URL+"/", time.Second).LookupPincode(context.Background(), "400001")
	require.NoError(t, err)
	assert.Equal(t, "Mumbai", got.District)
	assert.Equal(t, "Maharashtra", got.State)
	assert.Equal(t, []string{"Fort", "Stock Exchange"}, got.PostOffices)
}

func TestPincodeClient_NoRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"Message":"No records found","Status":"Error","PostOffice":null}]`))
	}))
	defer srv.Close()

	_, err := lookup.NewPincodeClient(srv.URL, time.Second).LookupPincode(context.Background(), "999999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPincodeClient_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := lookup.NewPincodeClient(srv.URL, time.Second).LookupPincode(context.Background(), "400001")
	assert.ErrorIs(t, err, domain.ErrLookupUnavailable)
}

func TestPincodeClient_ContextDeadline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := lookup.NewPincodeClient(srv.URL, time.Minute).LookupPincode(ctx, "400001")
	assert.ErrorIs(t, err, domain.ErrLookupUnavailable)
}

func TestIFSCClient_Found(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/HDFC0000001", r.URL.Path)
		_, _ = w.Write([]byte(`{"IFSC":"HDFC0000001","BANK":"HDFC Bank","BRANCH":"Sandoz House",
			"ADDRESS":"Dr Annie Besant Road","CITY":"Mumbai","DISTRICT":"Mumbai","STATE":"Maharashtra","MICR":"400240002"}`))
	}))
	defer srv.Close()

	got, err := lookup.NewIFSCClient(srv.URL, time.Second).LookupIFSC(context.Background(), "HDFC0000001")
	require.NoError(t, err)
	assert.Equal(t, "HDFC Bank", got.Bank)
	assert.Equal(t, "Sandoz House", got.Branch)
	assert.Equal(t, "400240002", got.MICR)
}

func TestIFSCClient_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`"Not Found"`))
	}))
	defer srv.Close()

	_, err := lookup.NewIFSCClient(srv.URL, time.Second).LookupIFSC(context.Background(), "ABCD0000000")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestIFSCClient_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	}))
	defer srv.Close()

	_, err := lookup.NewIFSCClient(srv.URL, time.Second).LookupIFSC(context.Background(), "HDFC0000001")
	assert.ErrorIs(t, err, domain.ErrLookupUnavailable)
}
