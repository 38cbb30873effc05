package service

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"

	"github.com/Brainhub24/netcider/internal/domain"
)

var blue = color.New(color.FgBlue).SprintFunc()

// RenderService writes subnet results to a terminal-friendly table and,
// on request, dumps full address ranges.
type RenderService struct {
	logger  zerolog.Logger
	out     io.Writer
	noColor bool
}

// NewRenderService creates a new render service writing to out
func NewRenderService(logger zerolog.Logger, out io.Writer, noColor bool) *RenderService {
	return &RenderService{
		logger:  logger,
		out:     out,
		noColor: noColor,
	}
}

// Table renders the eight derived fields of a subnet as a two-column
// Property/Value table. Row order is fixed; consumers depend on it.
func (s *RenderService) Table(sub *domain.Subnet) {
	label := blue
	if s.noColor {
		label = fmt.Sprint
	}

	table := tablewriter.NewWriter(s.out)
	table.SetHeader([]string{"Property", "Value"})
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)

	for _, row := range [][2]string{
		{"Base", sub.Base.String()},
		{"Netmask", sub.Netmask.String()},
		{"Wildcard", sub.Wildcard.String()},
		{"Broadcast", sub.Broadcast.String()},
		{"Subnet ID", sub.Network.String()},
		{"Host min", sub.HostMin.String()},
		{"Host max", sub.HostMax.String()},
		{"Total Hosts", strconv.FormatUint(sub.TotalHosts, 10)},
	} {
		table.Append([]string{label(row[0]), row[1]})
	}

	table.Render()

	s.logger.Debug().
		Str("subnet", sub.String()).
		Uint64("total_hosts", sub.TotalHosts).
		Msg("Rendered subnet table")
}

// Range writes every address in the subnet, one per line. The range is
// walked lazily, so even very large subnets stream without buffering.
func (s *RenderService) Range(sub *domain.Subnet) error {
	w := bufio.NewWriter(s.out)
	for addr := range sub.Addresses() {
		if _, err := fmt.Fprintln(w, addr); err != nil {
			return fmt.Errorf("failed to write address range: %w", err)
		}
	}
	return w.Flush()
}
