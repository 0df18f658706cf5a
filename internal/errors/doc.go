// Package errors provides structured errors for the essence-api project.
//
// Every error carries a Code, a user-facing Message, an optional Cause and
// optional metadata. Codes map one-to-one onto gRPC status codes so that
// handlers can convert without losing meaning.
//
// Creating errors:
//
//	err := errors.NotFoundf("item %s not found", name)
//	err := errors.InvalidArgument("runs must be positive").WithMeta("runs", runs)
//
// Wrapping keeps the code of the wrapped error:
//
//	out, err := repo.Get(ctx, ownership.GetInput{PlayerID: id})
//	if err != nil {
//	    return nil, errors.Wrap(err, "failed to load ownership")
//	}
//
// Collecting field errors:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("player_id", input.PlayerID, vb)
//	if err := vb.Build(); err != nil {
//	    return nil, err
//	}
//
// Handlers convert with ToGRPCError and clients convert back with
// FromGRPCError. Metadata crosses the wire as a google.protobuf.Struct
// status detail.
//
// "No match" outcomes of the planning engine (unknown item, no plans, no
// items with a triple) are empty results, never errors.
package errors
