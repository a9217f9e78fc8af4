package remote

import (
	"encoding/json"

	"go.trai.ch/zerr"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// Requests travel as a Struct of named arguments and responses as a single Value.
// Domain records cross the wire through their JSON form.

type args map[string]any

func encodeArgs(a args) (*structpb.Struct, error) {
	out := &structpb.Struct{}
	if len(a) == 0 {
		return out, nil
	}
	raw, err := json.Marshal(a)
	if err != nil {
		return nil, zerr.Wrap(err, "encode request arguments")
	}
	if err := protojson.Unmarshal(raw, out); err != nil {
		return nil, zerr.Wrap(err, "encode request arguments")
	}
	return out, nil
}

func encodeValue(v any) (*structpb.Value, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, zerr.Wrap(err, "encode response")
	}
	out := &structpb.Value{}
	if err := protojson.Unmarshal(raw, out); err != nil {
		return nil, zerr.Wrap(err, "encode response")
	}
	return out, nil
}

// decodeValue stores v into dst. A missing value leaves dst untouched.
func decodeValue(v *structpb.Value, dst any) error {
	if v == nil || dst == nil {
		return nil
	}
	raw, err := protojson.Marshal(v)
	if err != nil {
		return zerr.Wrap(err, "decode value")
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return zerr.Wrap(err, "decode value")
	}
	return nil
}

// request gives handlers typed access to the arguments of one call.
type request struct {
	fields map[string]*structpb.Value
}

func newRequest(s *structpb.Struct) request {
	return request{fields: s.GetFields()}
}

// bind decodes the argument name into dst.
func (r request) bind(name string, dst any) error {
	if err := decodeValue(r.fields[name], dst); err != nil {
		return invalidArgument(name, err)
	}
	return nil
}

func (r request) str(name string) (string, error) {
	var s string
	err := r.bind(name, &s)
	return s, err
}
