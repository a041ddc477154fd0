package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"shopcal/pkg/store"
)

// Export writes all stored data to a JSON backup file.
type Export struct {
	Output string

	Persistence store.Persistence
}

func (n *Export) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("no persistence")
	}
	b, err := store.Export(ctx, n.Persistence)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}
	if n.Output == "" || n.Output == "-" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(n.Output, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d entries)\n", n.Output, len(b.Entries))
	return nil
}

// Import replaces all stored data with a backup file's contents. The file
// is validated before anything is touched; an invalid file mutates nothing.
type Import struct {
	Input string

	Persistence store.Persistence
}

func (n *Import) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("no persistence")
	}
	data, err := os.ReadFile(n.Input)
	if err != nil {
		return err
	}
	b, err := store.ParseBackup(data)
	if err != nil {
		return err
	}
	if err := store.Import(ctx, n.Persistence, b); err != nil {
		return err
	}
	fmt.Printf("imported %d entries\n", len(b.Entries))
	return nil
}
