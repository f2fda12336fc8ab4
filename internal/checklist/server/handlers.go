package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/shiroemons/go-checklist/pkg/checklist"
)

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": checklist.Version,
	})
}

// handleParse はチェックリストのバイト列を受け取り、JSONに変換して返します
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	data, ok := s.readBody(w, r)
	if !ok {
		return
	}

	c, err := checklist.Read(data)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.loggerFor(r).Debug("parsed checklist",
		zap.String("event", c.Header.EventName),
		zap.Int("circles", len(c.Circles)),
	)
	writeJSON(w, http.StatusOK, c)
}

// handleRender はJSONのチェックリストを受け取り、指定された文字コードのCSVを返します。
// クエリ: encoding（既定は UTF-8）, crlf, bom
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	enc := checklist.UTF8
	if name := query.Get("encoding"); name != "" {
		parsed, ok := checklist.ParseEncoding(name)
		if !ok {
			s.respondError(w, r, fmt.Errorf("%w: %s", checklist.ErrUnsupportedEncoding, name))
			return
		}
		enc = parsed
	}

	var opts []checklist.WriteOption
	if on, err := parseFlag(query.Get("crlf")); err != nil {
		writeError(w, http.StatusBadRequest, "invalid crlf parameter")
		return
	} else if on {
		opts = append(opts, checklist.WithCRLF())
	}
	if on, err := parseFlag(query.Get("bom")); err != nil {
		writeError(w, http.StatusBadRequest, "invalid bom parameter")
		return
	} else if on {
		opts = append(opts, checklist.WithBOM())
	}

	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	var c checklist.Checklist
	if err := json.Unmarshal(body, &c); err != nil {
		writeError(w, http.StatusBadRequest, "invalid checklist JSON")
		return
	}

	data, err := checklist.Write(&c, enc, opts...)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset="+string(enc))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		s.loggerFor(r).Warn("failed to write response", zap.Error(err))
	}
}

// readBody はサイズ上限つきでリクエストボディを読み込みます。
// 失敗した場合はエラーレスポンスを書き込み、false を返します。
func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxBodyBytes)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return nil, false
		}
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return nil, false
	}
	return data, true
}

func parseFlag(v string) (bool, error) {
	if v == "" {
		return false, nil
	}
	return strconv.ParseBool(v)
}
