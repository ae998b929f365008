package api

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/segmentio/ksuid"
	"github.com/sirupsen/logrus"
	"github.com/ssargent/charseq/pkg/codec"
	"github.com/ssargent/charseq/pkg/text"
)

const defaultMaxBodyBytes int64 = 1 << 20

// Server holds the API server state
type Server struct {
	store   TextStore
	config  ServerConfig
	metrics *Metrics
	logger  *logrus.Logger
}

// NewServer creates a new API server
func NewServer(store TextStore, config ServerConfig, metrics *Metrics, logger *logrus.Logger) *Server {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if config.BuilderCapacity < 1 {
		config.BuilderCapacity = text.DefaultBuilderCapacity
	}
	if config.MaxBodyBytes <= 0 {
		config.MaxBodyBytes = defaultMaxBodyBytes
	}
	return &Server{
		store:   store,
		config:  config,
		metrics: metrics,
		logger:  logger,
	}
}

func (s *Server) recordCodec(op string, err error, inputBytes int) {
	if s.metrics != nil {
		s.metrics.RecordCodecOperation(op, err == nil, inputBytes)
	}
}

func (s *Server) recordStore(op string, err error, start time.Time) {
	if s.metrics != nil {
		s.metrics.RecordStoreOperation(op, err == nil, time.Since(start))
	}
}

func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		sendError(w, "Invalid JSON in request body", http.StatusBadRequest)
		return false
	}
	return true
}

func textID(w http.ResponseWriter, r *http.Request) (ksuid.KSUID, bool) {
	id, err := ksuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		sendError(w, "Invalid text id", http.StatusBadRequest)
		return ksuid.Nil, false
	}
	return id, true
}

func textResponse(id ksuid.KSUID, seq *text.Sequence) TextResponse {
	resp := TextResponse{Text: seq.String(), Length: seq.Len()}
	if id != ksuid.Nil {
		resp.ID = id.String()
	}
	return resp
}

// handleHealth godoc
//
//	@Summary		Health check
//	@Description	Get the health status of the API
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/health [get]
//	@Security		ApiKeyAuth
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	healthy := true
	if s.store != nil {
		if _, err := s.store.Count(); err != nil {
			s.logger.WithError(err).Warn("health check: store unavailable")
			status = "degraded"
			healthy = false
		}
	}
	if s.metrics != nil {
		s.metrics.RecordHealthCheck(healthy)
	}
	sendSuccess(w, map[string]string{"status": status})
}

// handleHex godoc
//
//	@Summary		Hex dump
//	@Description	Render the raw request body as uppercase hexadecimal, two digits per byte
//	@Tags			codec
//	@Accept			octet-stream
//	@Produce		json
//	@Param			body	body		[]byte	true	"Bytes to dump"
//	@Success		200		{object}	HexResponse
//	@Failure		400		{object}	APIResponse
//	@Security		ApiKeyAuth
//	@Router			/hex [post]
func (s *Server) handleHex(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.config.MaxBodyBytes))
	if err != nil {
		s.recordCodec("hex", err, 0)
		sendError(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	seq, err := text.HexString(body, 0, len(body))
	s.recordCodec("hex", err, len(body))
	if err != nil {
		sendErr(w, err)
		return
	}
	sendSuccess(w, HexResponse{Hex: seq.String(), Length: len(body)})
}

func parseField(width int, order string) (codec.Field, error) {
	o, err := codec.ParseByteOrder(order)
	if err != nil {
		return codec.Field{}, err
	}
	return codec.Field{Width: width, Order: o}, nil
}

// handleIntEncode godoc
//
//	@Summary		Encode an integer
//	@Description	Encode a 16 bit signed integer in big or little endian order, or a 32 bit one in big endian order
//	@Tags			codec
//	@Accept			json
//	@Produce		json
//	@Param			request	body		IntEncodeRequest	true	"Value to encode"
//	@Success		200		{object}	IntResponse
//	@Failure		400		{object}	APIResponse
//	@Security		ApiKeyAuth
//	@Router			/ints/encode [post]
func (s *Server) handleIntEncode(w http.ResponseWriter, r *http.Request) {
	var req IntEncodeRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	field, err := parseField(req.Width, req.Order)
	if err != nil {
		s.recordCodec("int_encode", err, 0)
		sendErr(w, err)
		return
	}

	buf, err := field.Encode(req.Value)
	if err != nil {
		s.recordCodec("int_encode", err, 0)
		sendErr(w, err)
		return
	}

	hex, err := codec.ToHexString(buf, 0, len(buf))
	s.recordCodec("int_encode", err, len(buf))
	if err != nil {
		sendErr(w, err)
		return
	}
	sendSuccess(w, IntResponse{Value: req.Value, Hex: hex, Width: field.Width, Order: string(field.Order)})
}

// handleIntDecode godoc
//
//	@Summary		Decode an integer
//	@Description	Read a 16 or 32 bit signed integer from a hex dump at the given offset
//	@Tags			codec
//	@Accept			json
//	@Produce		json
//	@Param			request	body		IntDecodeRequest	true	"Hex dump and field position"
//	@Success		200		{object}	IntResponse
//	@Failure		400		{object}	APIResponse
//	@Security		ApiKeyAuth
//	@Router			/ints/decode [post]
func (s *Server) handleIntDecode(w http.ResponseWriter, r *http.Request) {
	var req IntDecodeRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	field, err := parseField(req.Width, req.Order)
	if err != nil {
		s.recordCodec("int_decode", err, 0)
		sendErr(w, err)
		return
	}

	buf, err := codec.DecodeHex(req.Hex)
	if err != nil {
		s.recordCodec("int_decode", err, 0)
		sendErr(w, err)
		return
	}

	value, err := field.Decode(buf, req.Offset)
	s.recordCodec("int_decode", err, len(buf))
	if err != nil {
		sendErr(w, err)
		return
	}

	hex, err := codec.ToHexString(buf, req.Offset, field.Size())
	if err != nil {
		sendErr(w, err)
		return
	}
	sendSuccess(w, IntResponse{Value: value, Hex: hex, Width: field.Width, Order: string(field.Order)})
}

// handleConcat godoc
//
//	@Summary		Concatenate texts
//	@Description	Join fragments in order with a text builder
//	@Tags			texts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ConcatRequest	true	"Fragments"
//	@Success		200		{object}	TextResponse
//	@Failure		400		{object}	APIResponse
//	@Security		ApiKeyAuth
//	@Router			/texts/concat [post]
func (s *Server) handleConcat(w http.ResponseWriter, r *http.Request) {
	var req ConcatRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	b := text.NewBuilderSize(s.config.BuilderCapacity)
	for _, fragment := range req.Fragments {
		b.AppendString(fragment)
	}
	seq := b.Sequence()
	s.recordCodec("concat", nil, seq.Len()*2)

	sendSuccess(w, textResponse(ksuid.Nil, seq))
}

// handleCompare godoc
//
//	@Summary		Compare texts
//	@Description	Compare two texts. compare is 0 for equal texts, 1 when one is a strict prefix of the other, and -1 otherwise
//	@Tags			texts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CompareRequest	true	"Texts to compare"
//	@Success		200		{object}	CompareResponse
//	@Failure		400		{object}	APIResponse
//	@Security		ApiKeyAuth
//	@Router			/texts/compare [post]
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	a := text.FromString(req.A)
	b := text.FromString(req.B)
	s.recordCodec("compare", nil, (a.Len()+b.Len())*2)

	sendSuccess(w, CompareResponse{Compare: a.CompareTo(b), Equal: a.Equal(b)})
}

// handleCreateText godoc
//
//	@Summary		Store a text
//	@Description	Persist a text and return its generated id
//	@Tags			texts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		TextRequest	true	"Text"
//	@Success		201		{object}	TextResponse
//	@Failure		400		{object}	APIResponse
//	@Failure		500		{object}	APIResponse
//	@Security		ApiKeyAuth
//	@Router			/texts [post]
func (s *Server) handleCreateText(w http.ResponseWriter, r *http.Request) {
	var req TextRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	start := time.Now()
	seq := text.FromString(req.Text)
	id, err := s.store.Create(seq)
	s.recordStore("create", err, start)
	if err != nil {
		s.logger.WithError(err).Error("failed to create text")
		sendErr(w, err)
		return
	}

	s.logger.WithField("id", id.String()).Debug("text created")
	sendStatus(w, http.StatusCreated, textResponse(id, seq))
}

// handleGetText godoc
//
//	@Summary		Fetch a text
//	@Tags			texts
//	@Produce		json
//	@Param			id	path		string	true	"Text id"
//	@Success		200	{object}	TextResponse
//	@Failure		400	{object}	APIResponse
//	@Failure		404	{object}	APIResponse
//	@Security		ApiKeyAuth
//	@Router			/texts/{id} [get]
func (s *Server) handleGetText(w http.ResponseWriter, r *http.Request) {
	id, ok := textID(w, r)
	if !ok {
		return
	}

	start := time.Now()
	seq, err := s.store.Read(id)
	s.recordStore("read", err, start)
	if err != nil {
		sendErr(w, err)
		return
	}
	sendSuccess(w, textResponse(id, seq))
}

// handleUpdateText godoc
//
//	@Summary		Replace a text
//	@Tags			texts
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string		true	"Text id"
//	@Param			request	body		TextRequest	true	"Text"
//	@Success		200		{object}	TextResponse
//	@Failure		400		{object}	APIResponse
//	@Failure		404		{object}	APIResponse
//	@Security		ApiKeyAuth
//	@Router			/texts/{id} [put]
func (s *Server) handleUpdateText(w http.ResponseWriter, r *http.Request) {
	id, ok := textID(w, r)
	if !ok {
		return
	}
	var req TextRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	start := time.Now()
	seq := text.FromString(req.Text)
	err := s.store.Update(id, seq)
	s.recordStore("update", err, start)
	if err != nil {
		sendErr(w, err)
		return
	}
	sendSuccess(w, textResponse(id, seq))
}

// handleDeleteText godoc
//
//	@Summary		Delete a text
//	@Tags			texts
//	@Produce		json
//	@Param			id	path		string	true	"Text id"
//	@Success		200	{object}	map[string]string
//	@Failure		400	{object}	APIResponse
//	@Failure		404	{object}	APIResponse
//	@Security		ApiKeyAuth
//	@Router			/texts/{id} [delete]
func (s *Server) handleDeleteText(w http.ResponseWriter, r *http.Request) {
	id, ok := textID(w, r)
	if !ok {
		return
	}

	start := time.Now()
	err := s.store.Delete(id)
	s.recordStore("delete", err, start)
	if err != nil {
		sendErr(w, err)
		return
	}
	sendSuccess(w, map[string]string{"id": id.String(), "status": "deleted"})
}

// handleListTexts godoc
//
//	@Summary		List text ids
//	@Tags			texts
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Failure		500	{object}	APIResponse
//	@Security		ApiKeyAuth
//	@Router			/texts [get]
func (s *Server) handleListTexts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ids, err := s.store.List()
	s.recordStore("list", err, start)
	if err != nil {
		sendErr(w, err)
		return
	}

	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	sendSuccess(w, map[string]interface{}{"ids": out, "count": len(out)})
}
