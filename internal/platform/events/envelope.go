// Package events implements the wire contract for check-execution events:
// a CloudEvents-flavored JSON envelope carrying a string type tag and a
// typed payload
package events

import (
	"encoding/json"
	stderrs "errors"
	"reflect"
	"strings"
	"sync"
	"time"

	perr "factsagent/internal/platform/errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/google/uuid"
)

// Event type tags recognized by the agent
const (
	FactsGatheringRequestedType = "Checks.V1.FactsGatheringRequested"
	FactsGatheredType           = "Checks.V1.FactsGathered"
)

// Envelope is the outer event frame shared by all event types
type Envelope struct {
	ID     string          `json:"id"`
	Source string          `json:"source,omitempty"`
	Type   string          `json:"type"`
	Time   time.Time       `json:"time,omitzero"`
	Data   json.RawMessage `json:"data"`
}

var (
	vOnce  sync.Once
	vld    *validator.Validate
	vTrans ut.Translator
)

// validate returns the singleton payload validator with english translations
// and json tag names in messages
func validate() (*validator.Validate, ut.Translator) {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		vTrans, _ = uni.GetTranslator("en")

		vld = validator.New(validator.WithRequiredStructEnabled())
		vld.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})
		_ = en_translations.RegisterDefaultTranslations(vld, vTrans)
	})
	return vld, vTrans
}

// Decode parses the envelope without touching the payload
func Decode(raw []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Envelope{}, perr.Wrap(err, perr.ErrorCodeMalformedEnvelope, "undecodable event envelope")
	}
	if env.Type == "" {
		return Envelope{}, perr.New(perr.ErrorCodeMalformedEnvelope, "event envelope has no type tag")
	}
	return env, nil
}

// TypeFromRaw extracts the event type tag from a raw envelope
func TypeFromRaw(raw []byte) (string, error) {
	env, err := Decode(raw)
	if err != nil {
		return "", err
	}
	return env.Type, nil
}

// DataFromRaw decodes the typed payload of a raw envelope into v and
// validates its required fields
func DataFromRaw(raw []byte, v any) error {
	env, err := Decode(raw)
	if err != nil {
		return err
	}
	return DataFromEnvelope(env, v)
}

// DataFromEnvelope decodes an already-parsed envelope's payload into v
func DataFromEnvelope(env Envelope, v any) error {
	if len(env.Data) == 0 {
		return perr.New(perr.ErrorCodeMalformedPayload, "event envelope has no data")
	}
	if err := json.Unmarshal(env.Data, v); err != nil {
		return perr.Wrap(err, perr.ErrorCodeMalformedPayload, "undecodable event payload")
	}
	vd, trans := validate()
	if err := vd.Struct(v); err != nil {
		return perr.Wrap(err, perr.ErrorCodeMalformedPayload, translated(err, trans))
	}
	return nil
}

// Marshal frames data into an envelope with a fresh uuid and serializes it
func Marshal(eventType, source string, data any) ([]byte, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeJSON, "unencodable event payload")
	}
	return json.Marshal(Envelope{
		ID:     uuid.NewString(),
		Source: source,
		Type:   eventType,
		Time:   time.Now().UTC(),
		Data:   body,
	})
}

// translated flattens validator errors into one readable message
func translated(err error, trans ut.Translator) string {
	var verrs validator.ValidationErrors
	if !stderrs.As(err, &verrs) {
		return "invalid event payload"
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fe.Translate(trans))
	}
	return "invalid event payload: " + strings.Join(parts, "; ")
}
