// Package store implements the shortlist command: listing and toggling the
// locally persisted shortlist outside a live session.
package store

import (
	"fmt"

	"github.com/Tpypan/wwlens/internal/enhance"
	"github.com/Tpypan/wwlens/pkg/shortlist"
	"github.com/urfave/cli/v2"
)

// ListAction prints the shortlisted posting ids, one per line.
func ListAction(c *cli.Context) error {
	logger := enhance.NewLogger(c)
	s, err := shortlist.Open(c.String("db"), logger)
	if err != nil {
		return err
	}
	defer s.Close()

	ids := s.IDs()
	if len(ids) == 0 {
		fmt.Println("Shortlist is empty")
		return nil
	}
	for _, id := range ids {
		fmt.Println(id)
	}
	return nil
}

// ToggleAction flips the shortlist state of the given posting ids.
func ToggleAction(c *cli.Context) error {
	logger := enhance.NewLogger(c)
	if c.NArg() == 0 {
		return fmt.Errorf("usage: shortlist toggle <posting-id>...")
	}
	s, err := shortlist.Open(c.String("db"), logger)
	if err != nil {
		return err
	}
	defer s.Close()

	for _, id := range c.Args().Slice() {
		if s.Toggle(id) {
			fmt.Printf("%s shortlisted\n", id)
		} else {
			fmt.Printf("%s removed\n", id)
		}
	}
	return nil
}
