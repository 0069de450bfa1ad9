package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"chimney_care_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSubmitter records calls and returns a fixed result
type stubSubmitter struct {
	mu      sync.Mutex
	calls   []models.LeadRecord
	status  int
	err     error
	release chan struct{} // when set, Submit blocks until closed
	entered chan struct{}
}

func (s *stubSubmitter) Submit(ctx context.Context, lead models.LeadRecord) (int, error) {
	s.mu.Lock()
	s.calls = append(s.calls, lead)
	s.mu.Unlock()

	if s.entered != nil {
		s.entered <- struct{}{}
	}
	if s.release != nil {
		<-s.release
	}
	return s.status, s.err
}

func (s *stubSubmitter) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func fillForm(t *testing.T, f *LeadForm, values map[models.LeadField]string) {
	for field, v := range values {
		require.NoError(t, f.HandleChange(field, v))
	}
}

func TestLeadFormInitialState(t *testing.T) {
	f := NewLeadForm(&stubSubmitter{})
	state := f.Snapshot()

	assert.True(t, state.Record.IsEmpty())
	assert.False(t, state.Submitting)
	assert.Nil(t, state.Outcome)
}

func TestLeadFormHandleChange(t *testing.T) {
	f := NewLeadForm(&stubSubmitter{})

	require.NoError(t, f.HandleChange(models.LeadFieldName, "Jane"))
	require.NoError(t, f.HandleChange(models.LeadFieldCity, "Pune"))
	before := f.Snapshot().Record

	require.NoError(t, f.HandleChange(models.LeadFieldPhone, "555-1234"))
	after := f.Snapshot().Record

	assert.Equal(t, "555-1234", after.Phone)
	assert.Equal(t, before.Name, after.Name)
	assert.Equal(t, before.City, after.City)
	assert.Equal(t, before.Email, after.Email)
	assert.Equal(t, before.PreferredDate, after.PreferredDate)
	assert.Equal(t, before.Message, after.Message)

	t.Run("same value twice is idempotent", func(t *testing.T) {
		require.NoError(t, f.HandleChange(models.LeadFieldPhone, "555-1234"))
		assert.Equal(t, after, f.Snapshot().Record)
	})

	t.Run("unknown field", func(t *testing.T) {
		err := f.HandleChange("address", "Main St")
		assert.ErrorIs(t, err, ErrUnknownLeadField)
		assert.Equal(t, after, f.Snapshot().Record)
	})

	t.Run("values are stored verbatim", func(t *testing.T) {
		long := "  <b>oily</b> filter \n second line  "
		require.NoError(t, f.HandleChange(models.LeadFieldMessage, long))
		assert.Equal(t, long, f.Snapshot().Record.Message)
	})
}

func TestLeadFormSubmitSuccess(t *testing.T) {
	var received models.LeadRecord
	var contentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/leads", r.URL.Path)
		contentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&received)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 42}`))
	}))
	defer server.Close()

	f := NewLeadForm(NewLeadAPIClient(server.URL, time.Second))
	fillForm(t, f, map[models.LeadField]string{
		models.LeadFieldName:  "Jane",
		models.LeadFieldPhone: "555-1234",
	})

	sub, err := f.HandleSubmit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, models.LeadRecord{Name: "Jane", Phone: "555-1234"}, received)
	assert.Equal(t, http.StatusCreated, sub.StatusCode)
	assert.Equal(t, "Jane", sub.Record.Name)

	state := f.Snapshot()
	require.NotNil(t, state.Outcome)
	assert.Equal(t, models.OutcomeSuccess, state.Outcome.Kind)
	assert.Equal(t, SubmitConfirmationMessage, state.Outcome.Message)
	assert.True(t, state.Record.IsEmpty())
	assert.False(t, state.Submitting)
}

func TestLeadFormSubmitRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail": "phone invalid"}`))
	}))
	defer server.Close()

	f := NewLeadForm(NewLeadAPIClient(server.URL, time.Second))
	fillForm(t, f, map[models.LeadField]string{
		models.LeadFieldName:    "Jane",
		models.LeadFieldPhone:   "abc",
		models.LeadFieldMessage: "smell",
	})
	before := f.Snapshot().Record

	sub, err := f.HandleSubmit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, sub.StatusCode)

	state := f.Snapshot()
	require.NotNil(t, state.Outcome)
	assert.Equal(t, models.OutcomeError, state.Outcome.Kind)
	assert.Equal(t, "phone invalid", state.Outcome.Message)
	assert.Equal(t, before, state.Record)
	assert.False(t, state.Submitting)

	t.Run("resubmitting unchanged record keeps fields", func(t *testing.T) {
		_, err := f.HandleSubmit(context.Background())
		require.NoError(t, err)
		assert.Equal(t, before, f.Snapshot().Record)
	})
}

func TestLeadFormSubmitNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close() // connection refused from now on

	f := NewLeadForm(NewLeadAPIClient(url, time.Second))
	fillForm(t, f, map[models.LeadField]string{models.LeadFieldName: "Jane"})

	sub, err := f.HandleSubmit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, sub.StatusCode)

	state := f.Snapshot()
	require.NotNil(t, state.Outcome)
	assert.Equal(t, models.OutcomeError, state.Outcome.Kind)
	assert.Equal(t, UnreachableSubmitMessage, state.Outcome.Message)
	assert.Equal(t, "Jane", state.Record.Name)
	assert.False(t, state.Submitting)
}

func TestLeadFormRejectsOverlappingSubmit(t *testing.T) {
	stub := &stubSubmitter{
		status:  http.StatusCreated,
		release: make(chan struct{}),
		entered: make(chan struct{}, 1),
	}
	f := NewLeadForm(stub)
	fillForm(t, f, map[models.LeadField]string{models.LeadFieldName: "Jane"})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := f.HandleSubmit(context.Background())
		assert.NoError(t, err)
	}()

	<-stub.entered
	state := f.Snapshot()
	assert.True(t, state.Submitting)
	assert.Nil(t, state.Outcome)

	// Editing while in flight is allowed
	require.NoError(t, f.HandleChange(models.LeadFieldCity, "Pune"))

	_, err := f.HandleSubmit(context.Background())
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(stub.release)
	<-done

	assert.Equal(t, 1, stub.callCount())
	assert.False(t, f.Snapshot().Submitting)
}

func TestLeadFormSubmitClearsPreviousOutcome(t *testing.T) {
	stub := &stubSubmitter{
		err:     &SubmissionError{StatusCode: 500, Message: "boom"},
		release: make(chan struct{}),
		entered: make(chan struct{}, 1),
	}
	f := NewLeadForm(stub)
	f.Fail("previous")
	require.NotNil(t, f.Snapshot().Outcome)

	done := make(chan struct{})
	go func() {
		defer close(done)
		f.HandleSubmit(context.Background())
	}()

	<-stub.entered
	assert.Nil(t, f.Snapshot().Outcome)
	close(stub.release)
	<-done

	state := f.Snapshot()
	require.NotNil(t, state.Outcome)
	assert.Equal(t, "boom", state.Outcome.Message)
}

func TestLeadFormUnknownErrorUsesFallback(t *testing.T) {
	f := NewLeadForm(&stubSubmitter{err: assert.AnError})
	_, err := f.HandleSubmit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, FallbackSubmitMessage, f.Snapshot().Outcome.Message)
}

func TestLeadFormStore(t *testing.T) {
	store := NewLeadFormStore(&stubSubmitter{}, time.Hour)
	defer store.Close()

	a := store.Get("visitor-a")
	assert.Same(t, a, store.Get("visitor-a"))
	assert.NotSame(t, a, store.Get("visitor-b"))
	assert.Equal(t, 2, store.Len())

	t.Run("state does not create forms", func(t *testing.T) {
		assert.Equal(t, LeadFormState{}, store.State("visitor-c"))
		assert.Equal(t, 2, store.Len())

		require.NoError(t, a.HandleChange(models.LeadFieldName, "Asha"))
		assert.Equal(t, "Asha", store.State("visitor-a").Record.Name)
	})

	t.Run("sweep keeps recent forms", func(t *testing.T) {
		assert.Equal(t, 0, store.Sweep(time.Now()))
		assert.Equal(t, 2, store.Len())
	})

	t.Run("sweep evicts idle forms", func(t *testing.T) {
		assert.Equal(t, 2, store.Sweep(time.Now().Add(2*time.Hour)))
		assert.Equal(t, 0, store.Len())
	})

	t.Run("in-flight forms survive sweep", func(t *testing.T) {
		stub := &stubSubmitter{release: make(chan struct{}), entered: make(chan struct{}, 1)}
		s := NewLeadFormStore(stub, time.Hour)
		f := s.Get("busy")

		done := make(chan struct{})
		go func() {
			defer close(done)
			f.HandleSubmit(context.Background())
		}()
		<-stub.entered

		assert.Equal(t, 0, s.Sweep(time.Now().Add(2*time.Hour)))
		close(stub.release)
		<-done
	})
}
