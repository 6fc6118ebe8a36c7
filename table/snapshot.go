package table

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// ErrBadSnapshot is returned for a snapshot that does not start with the flat table header
var ErrBadSnapshot = errors.New("invalid flat table snapshot")

// WriteSnapshot encodes the header and rows as a protobuf ListValue of string lists
func WriteSnapshot(w io.Writer, rows []Row) error {
	lv := &structpb.ListValue{Values: make([]*structpb.Value, 0, len(rows)+1)}
	lv.Values = append(lv.Values, stringList(Columns))
	for _, r := range rows {
		lv.Values = append(lv.Values, stringList(r.Fields()))
	}
	b, err := proto.Marshal(lv)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	_, err = w.Write(b)
	return err
}

// ReadSnapshot decodes rows written by WriteSnapshot
func ReadSnapshot(r io.Reader) ([]Row, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var lv structpb.ListValue
	if err := proto.Unmarshal(b, &lv); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}
	values := lv.GetValues()
	if len(values) == 0 || !slices.Equal(listStrings(values[0]), Columns) {
		return nil, ErrBadSnapshot
	}
	rows := make([]Row, 0, len(values)-1)
	for _, v := range values[1:] {
		rows = append(rows, RowFromFields(listStrings(v)))
	}
	return rows, nil
}

// WriteSnapshotFile writes a snapshot to path
func WriteSnapshotFile(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteSnapshot(f, rows); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// ReadSnapshotFile reads a snapshot from path
func ReadSnapshotFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadSnapshot(f)
}

func stringList(fields []string) *structpb.Value {
	vals := make([]*structpb.Value, len(fields))
	for i, s := range fields {
		vals[i] = structpb.NewStringValue(s)
	}
	return structpb.NewListValue(&structpb.ListValue{Values: vals})
}

func listStrings(v *structpb.Value) []string {
	items := v.GetListValue().GetValues()
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.GetStringValue()
	}
	return out
}
