package view

import (
	"fmt"
	"io"
	"strings"
)

// WriteText prints the page as a numbered station list.
func WriteText(w io.Writer, page *Page) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", page.T.Heading)
	if page.Error != "" {
		fmt.Fprintf(&b, "%s %s\n", page.T.RefreshError, page.Error)
	}
	for _, tab := range page.Tabs {
		if tab.Selected {
			fmt.Fprintf(&b, "[%s] ", tab.Label)
		} else {
			fmt.Fprintf(&b, " %s  ", tab.Label)
		}
	}
	b.WriteString("\n\n")

	if len(page.Stations) == 0 {
		fmt.Fprintf(&b, "%s\n", page.T.NoStations)
	}

	for i, st := range page.Stations {
		fmt.Fprintf(&b, "%d. %s %s (%s)\n", i+1, st.Marker, st.Name, st.Address)
		b.WriteString("   ")
		for _, cell := range st.Prices {
			star := ""
			if cell.Cheapest {
				star = " ⭐"
			}
			fmt.Fprintf(&b, "%s: %s%s   ", cell.Label, cell.Value, star)
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "   %s", st.Distance)
		if st.HomeDistance != "" {
			fmt.Fprintf(&b, ", %s", st.HomeDistance)
		}
		b.WriteString("\n\n")
	}

	if page.Loaded {
		fmt.Fprintf(&b, "%d %s %s · %s %s\n", len(page.Stations), page.T.StationsNear, page.Postcode, page.T.UpdatedAt, page.Updated)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
