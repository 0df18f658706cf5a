// Package client provides commands that call a running essence planner
package client

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/essence-api/internal/errors"
	"github.com/KirkDiggler/essence-api/internal/handlers/planner/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	// playerID is shared by the commands that read or write player state
	playerID string
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the essence planner",
	Long:  `Client commands call a running essence planner over gRPC and print the JSON reply.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&playerID, "player", "", "player whose ownership state applies")

	// Searches
	ClientCmd.AddCommand(recommendCmd)
	ClientCmd.AddCommand(lookupCmd)
	ClientCmd.AddCommand(lastSearchCmd)
	ClientCmd.AddCommand(simulateCmd)

	// Catalog
	ClientCmd.AddCommand(itemsCmd)

	// Ownership
	ClientCmd.AddCommand(ownershipCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createPlannerClient creates a planner service client
func createPlannerClient() (*v1alpha1.Client, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewClient(conn), cleanup, nil
}

// call sends one request and returns the reply document
func call(method string, fields map[string]interface{}) (*structpb.Struct, error) {
	req, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	client, cleanup, err := createPlannerClient()
	if err != nil {
		return nil, err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.Call(ctx, method, req)
	if err != nil {
		return nil, describe(method, err)
	}
	return resp, nil
}

// describe turns a status error back into a readable error with metadata
func describe(method string, err error) error {
	back := errors.FromGRPCError(err)
	meta := errors.GetMeta(back)
	if len(meta) == 0 {
		return fmt.Errorf("%s failed: %w", method, back)
	}
	return fmt.Errorf("%s failed: %w %v", method, back, meta)
}

// printJSON writes the reply as indented JSON
func printJSON(w io.Writer, resp *structpb.Struct) error {
	data, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to render response: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// attributeArg sends numbers as codes and anything else as a label
func attributeArg(arg string) interface{} {
	if n, err := strconv.Atoi(arg); err == nil {
		return n
	}
	return arg
}

// withPlayer adds player_id when --player was given
func withPlayer(fields map[string]interface{}) map[string]interface{} {
	if playerID != "" {
		fields["player_id"] = playerID
	}
	return fields
}

// requirePlayer fails the command when --player is missing
func requirePlayer() error {
	if playerID == "" {
		return fmt.Errorf("--player is required")
	}
	return nil
}
