package skiplist

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Dump writes one row per level, top level first, listing the keys that
// participate at that level.
func (s *SkipList[K, V]) Dump(w io.Writer) error {
	if s.closed {
		return ErrClosed
	}

	rows := make([][]string, 0, s.Levels())
	for level := s.Levels() - 1; level >= 0; level-- {
		var keys []string
		s.walk(level, func(n *node[K, V]) bool {
			keys = append(keys, fmt.Sprint(n.key))
			return true
		})
		rows = append(rows, []string{strconv.Itoa(level), strconv.Itoa(len(keys)), strings.Join(keys, " ")})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Level", "Nodes", "Keys"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
	return nil
}
