package v1handler

import (
	"io"
	"leavebot/internal/leave"
	"leavebot/pkg/serrors"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// maxLeaveBody bounds the size of a submission body.
const maxLeaveBody = 64 << 10

// InvalidBodyMessage is returned for bodies that are not a JSON object of
// strings.
const InvalidBodyMessage = "invalid body"

// SubmitLeave accepts {userId,type,startDate,endDate,reason?} and answers
// {"ok":true,"days":N}.
func (h *Handler) SubmitLeave(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sub, err := decodeSubmission(r.Body)
	if err != nil {
		h.writeError(w, h.NewError(ctx, serrors.Wrap(serrors.ErrBadRequest, err, InvalidBodyMessage)))

		return
	}

	req, err := h.deps.Leave.Submit(ctx, sub)
	if err != nil {
		h.writeError(w, h.NewError(ctx, err))

		return
	}

	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("ok", func(e *jx.Encoder) { e.Bool(true) })
		e.Field("days", func(e *jx.Encoder) { e.Int(req.Days) })
	})
	writeJSON(w, http.StatusOK, e.Bytes())
}

func decodeSubmission(body io.Reader) (leave.Submission, error) {
	var sub leave.Submission

	data, err := io.ReadAll(io.LimitReader(body, maxLeaveBody))
	if err != nil {
		return sub, errors.Wrap(err, "read body")
	}

	d := jx.DecodeBytes(data)
	if d.Next() != jx.Object {
		return sub, errors.New("body is not an object")
	}

	err = d.Obj(func(d *jx.Decoder, key string) error {
		var dst *string
		switch key {
		case "userId":
			dst = &sub.UserID
		case "type":
			dst = &sub.Type
		case "startDate":
			dst = &sub.StartDate
		case "endDate":
			dst = &sub.EndDate
		case "reason":
			dst = &sub.Reason
		default:
			return d.Skip()
		}

		if d.Next() == jx.Null {
			return d.Null()
		}
		v, err := d.Str()
		if err != nil {
			return errors.Wrapf(err, "field %q", key)
		}
		*dst = v

		return nil
	})
	if err != nil {
		return sub, errors.Wrap(err, "decode submission")
	}

	return sub, nil
}
