package shared

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/phrazzld/sarisari-api/internal/platform/logger"
)

// Format is a response serialization.
type Format string

const (
	// FormatJSON is the default serialization.
	FormatJSON Format = "json"
	// FormatXML is selected with ?format=xml.
	FormatXML Format = "xml"

	// FormatParam is the query parameter that selects the format.
	FormatParam = "format"

	contentTypeJSON = "application/json"
	contentTypeXML  = "application/xml"
)

// Fallback bodies written when a payload cannot be encoded.
var (
	encodeFailureJSON = []byte(`{"error":"Internal server error"}` + "\n")
	encodeFailureXML  = []byte(XMLDeclaration + "<response><error>Internal server error</error></response>")
)

// RequestFormat reports the serialization requested by r. The format
// parameter is matched case-insensitively; anything but xml means JSON.
func RequestFormat(r *http.Request) Format {
	if r != nil && strings.EqualFold(r.URL.Query().Get(FormatParam), string(FormatXML)) {
		return FormatXML
	}
	return FormatJSON
}

// Respond writes payload with the given status in the format r asks for.
func Respond(w http.ResponseWriter, r *http.Request, status int, payload interface{}) {
	if RequestFormat(r) == FormatXML {
		RespondWithXML(w, r, status, payload)
		return
	}
	RespondWithJSON(w, r, status, payload)
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode JSON response", "error", err)
		writeBody(w, r, http.StatusInternalServerError, contentTypeJSON, encodeFailureJSON)
		return
	}
	writeBody(w, r, status, contentTypeJSON, buf.Bytes())
}

// RespondWithXML writes an XML response with the given status code and data.
func RespondWithXML(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	body, err := EncodeXML(data)
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to encode XML response", "error", err)
		writeBody(w, r, http.StatusInternalServerError, contentTypeXML, encodeFailureXML)
		return
	}
	writeBody(w, r, status, contentTypeXML, body)
}

func writeBody(w http.ResponseWriter, r *http.Request, status int, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logger.FromContext(r.Context()).Debug("failed to write response body", "error", err)
	}
}
