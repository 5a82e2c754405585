package sandbox

import (
	"encoding/json"
	"io"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"payseal/internal/domain"
	"payseal/internal/gateway"
)

// Response codes in the gateway's result envelope.
const (
	CodeSuccess           = "0000"
	CodeInvalidEnvelope   = "1001"
	CodeDuplicateRequest  = "1002"
	CodeSignatureMismatch = "1003"
	CodeNotFound          = "1004"
)

// maxEnvelopeBytes bounds a posted envelope.
const maxEnvelopeBytes = 1 << 20

// Result is the JSON body of every answer.
type Result struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

// PaymentLink is returned for an accepted payment request.
type PaymentLink struct {
	RequestID string `json:"requestId"`
	PayURL    string `json:"payUrl"`
}

type memoryStore struct {
	mu       sync.RWMutex
	requests map[string]domain.PlainEnvelope
}

func newMemoryStore() *memoryStore {
	return &memoryStore{requests: make(map[string]domain.PlainEnvelope)}
}

// add stores p unless its request id was seen before.
func (m *memoryStore) add(p domain.PlainEnvelope) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, dup := m.requests[p.RequestID]; dup {
		return false
	}
	m.requests[p.RequestID] = p
	return true
}

func (m *memoryStore) get(requestID string) (domain.PlainEnvelope, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.requests[requestID]
	return p, ok
}

// Server serves the sandbox payment endpoint.
type Server struct {
	router  *mux.Router
	opener  domain.ResponseDecryptor
	store   *memoryStore
	payBase string
}

// New returns a server that opens envelopes with opener.InspectRequest.
// payBase prefixes the payment links it hands out.
func New(opener domain.ResponseDecryptor, payBase string) *Server {
	s := &Server{
		router:  mux.NewRouter(),
		opener:  opener,
		store:   newMemoryStore(),
		payBase: payBase,
	}
	s.router.HandleFunc(gateway.PaymentPath, s.createPayment).Methods(http.MethodPost)
	s.router.HandleFunc(gateway.PaymentPath+"/{requestId}", s.getPayment).Methods(http.MethodGet)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) createPayment(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var env domain.Envelope
	body, err := io.ReadAll(io.LimitReader(r.Body, maxEnvelopeBytes))
	if err == nil {
		err = json.Unmarshal(body, &env)
	}
	if err != nil {
		s.reject(w, http.StatusBadRequest, CodeInvalidEnvelope, errors.Wrap(err, "decode envelope"))
		return
	}

	plain, err := s.opener.InspectRequest(&env)
	if err != nil {
		code := CodeInvalidEnvelope
		if errors.Is(err, domain.ErrSignatureMismatch) {
			code = CodeSignatureMismatch
		}
		s.reject(w, http.StatusBadRequest, code, err)
		return
	}
	if !s.store.add(*plain) {
		s.reject(w, http.StatusConflict, CodeDuplicateRequest,
			errors.Errorf("requestId %s already used", plain.RequestID))
		return
	}

	log.Info().
		Str("requestId", plain.RequestID).
		Str("partnerId", plain.PartnerID).
		Msg("sandbox payment accepted")
	writeResult(w, http.StatusOK, Result{
		Code: CodeSuccess,
		Msg:  "success",
		Data: PaymentLink{RequestID: plain.RequestID, PayURL: s.payBase + "/pay/" + plain.RequestID},
	})
}

func (s *Server) getPayment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["requestId"]
	p, ok := s.store.get(id)
	if !ok {
		writeResult(w, http.StatusNotFound, Result{Code: CodeNotFound, Msg: "not found"})
		return
	}
	writeResult(w, http.StatusOK, Result{Code: CodeSuccess, Msg: "success", Data: p})
}

func (s *Server) reject(w http.ResponseWriter, status int, code string, err error) {
	log.Debug().Err(err).Int("status", status).Msg("sandbox request rejected")
	writeResult(w, status, Result{Code: code, Msg: err.Error()})
}

func writeResult(w http.ResponseWriter, status int, res Result) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(res)
}
