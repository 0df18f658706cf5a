package errors

import (
	"fmt"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// metaCodeKey holds the original code inside the details struct so that
// codes sharing a gRPC code survive the round trip.
const metaCodeKey = "_code"

// ToGRPCError converts an error to a gRPC status error
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !As(err, &customErr) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)
	if len(customErr.Meta) == 0 {
		return st.Err()
	}

	details, err := metaToStruct(customErr.Code, customErr.Meta)
	if err != nil {
		slog.Warn("dropping error metadata", "code", customErr.Code, "error", err)
		return st.Err()
	}

	withDetails, err := st.WithDetails(details)
	if err != nil {
		slog.Warn("failed to attach error details", "code", customErr.Code, "error", err)
		return st.Err()
	}

	return withDetails.Err()
}

// FromGRPCError converts a gRPC error to our custom error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    codeFromGRPC(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		details, ok := detail.(*structpb.Struct)
		if !ok {
			continue
		}
		meta := details.AsMap()
		if code, ok := meta[metaCodeKey].(string); ok {
			customErr.Code = Code(code)
			delete(meta, metaCodeKey)
		}
		if len(meta) > 0 {
			customErr.Meta = meta
		}
		break
	}

	return customErr
}

// metaToStruct converts error metadata into a protobuf Struct. Values that
// structpb cannot represent are rendered with fmt.
func metaToStruct(code Code, meta map[string]interface{}) (*structpb.Struct, error) {
	fields := make(map[string]interface{}, len(meta)+1)
	for k, v := range meta {
		if _, err := structpb.NewValue(v); err != nil {
			fields[k] = fmt.Sprint(v)
			continue
		}
		fields[k] = v
	}
	fields[metaCodeKey] = string(code)

	return structpb.NewStruct(fields)
}
