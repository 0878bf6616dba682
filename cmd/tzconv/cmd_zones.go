package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hlop3z/tzconv/internal/alerr"
	"github.com/hlop3z/tzconv/internal/cli"
	"github.com/hlop3z/tzconv/internal/convert"
	"github.com/hlop3z/tzconv/internal/tzdb"
)

// zonesCmd lists the timezones known to tzconv.
func zonesCmd(e env) *cobra.Command {
	var namesOnly bool
	var at string

	cmd := &cobra.Command{
		Use:     "zones [FILTER]",
		Aliases: []string{"tz", "list"},
		Short:   "List known timezones",
		Long:    `List the timezone identifiers known to tzconv with their UTC offset. FILTER keeps names containing it, ignoring case.`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := ""
			if len(args) == 1 {
				filter = args[0]
			}

			names := tzdb.Filter(tzdb.Names(), filter)
			if len(names) == 0 {
				return alerr.Newf(alerr.ErrUnknownTimezone, "no timezone matches %q", filter).
					WithInput(filter).
					WithHelp(alerr.SuggestSimilar(filter, tzdb.Names()))
			}

			if namesOnly {
				for _, n := range names {
					fmt.Fprintln(e.stdout, n)
				}
				return nil
			}

			instant := time.Now()
			if at != "" {
				t, err := convert.Instant(at, "UTC")
				if err != nil {
					return err
				}
				instant = t
			}

			table, skipped := zoneTable(names, instant)
			fmt.Fprint(e.stdout, table.String())
			if len(skipped) > 0 {
				fmt.Fprint(e.stderr, cli.FormatWarning(fmt.Sprintf("skipped %s the embedded tz database does not know: %s",
					cli.FormatCount(len(skipped), "zone", "zones"), strings.Join(skipped, ", "))))
			}
			fmt.Fprintln(e.stderr, cli.Dim(cli.FormatCount(table.Len(), "zone", "zones")+" at "+instant.UTC().Format(time.RFC3339)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&namesOnly, "names", false, "Print only zone names, one per line")
	cmd.Flags().StringVar(&at, "at", "", "Show offsets at this UTC time (YYYY/MM/DD HH:MM:SS) instead of now")

	return cmd
}

// zoneTable lists names with their offset at instant. Names the embedded
// database cannot resolve are returned in skipped.
func zoneTable(names []string, instant time.Time) (table *cli.Table, skipped []string) {
	table = cli.NewTable("ZONE", "OFFSET", "ABBR", "DST")
	for _, n := range names {
		z, err := tzdb.Resolve(n)
		if err != nil {
			// Listed by the host but unknown to the embedded database.
			skipped = append(skipped, n)
			continue
		}
		abbr, off := z.OffsetAt(instant)
		dst := ""
		if z.IsDST(instant) {
			dst = "yes"
		}
		table.AddRow(n, cli.FormatOffset(off), abbr, dst)
	}
	return table, skipped
}
