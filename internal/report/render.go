package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Render writes the report as an aligned plain-text listing: overview,
// inputs, outputs, summary.
func Render(w io.Writer, r *Report) error {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)

	section(tw, "TRANSACTION OVERVIEW")
	row(tw, "Transaction ID (txid)", r.Txid)
	if r.HasWitness {
		row(tw, "Witness txid (wtxid)", r.WTxid)
	}
	row(tw, "Version", fmt.Sprintf("%d", r.Version))
	row(tw, "Lock Time", fmt.Sprintf("%d (%s)", r.LockTime, r.LockTimeKind))
	row(tw, "Size", fmt.Sprintf("%d bytes", r.TotalSize))
	row(tw, "Base Size", fmt.Sprintf("%d bytes", r.BaseSize))
	row(tw, "Virtual Size", fmt.Sprintf("%d vBytes", r.VirtualSize))
	row(tw, "Weight", fmt.Sprintf("%d WU", r.Weight))

	section(tw, fmt.Sprintf("INPUTS (%d)", r.InputCount))
	for _, in := range r.Inputs {
		fmt.Fprintf(tw, "\nInput #%d\n", in.Index)
		row(tw, "  Type", in.Type)
		row(tw, "  Previous TX", in.PrevTxid)
		row(tw, "  Output Index", fmt.Sprintf("%d", in.PrevVout))
		row(tw, "  Script Length", fmt.Sprintf("%d bytes", in.ScriptSigLen))
		if in.ScriptSigHex != "" {
			row(tw, "  Script Sig", in.ScriptSigHex)
		}
		row(tw, "  Sequence", fmt.Sprintf("0x%08x", in.Sequence))
		if in.RelativeLock != nil {
			row(tw, "  Timelock", fmt.Sprintf("%d %s", in.RelativeLock.Value, in.RelativeLock.Kind))
		}
		if len(in.Witness) > 0 {
			row(tw, "  Witness Items", fmt.Sprintf("%d", len(in.Witness)))
			for i, item := range in.Witness {
				row(tw, fmt.Sprintf("  Witness [%d]", i), fmt.Sprintf("%s\t%s", item.Label, item.Hex))
			}
		}
	}

	section(tw, fmt.Sprintf("OUTPUTS (%d)", r.OutputCount))
	for _, out := range r.Outputs {
		fmt.Fprintf(tw, "\nOutput #%d\n", out.Index)
		row(tw, "  Value", fmt.Sprintf("%s BTC (%d satoshis)", out.ValueBTC, out.ValueSats))
		if out.IsAnchor {
			row(tw, "  Type", "Ephemeral Anchor (P2A) - Pay-to-Anchor")
			row(tw, "  Address", out.AnchorAddress)
			row(tw, "  Purpose", "Anyone-can-spend anchor for CPFP fee bumping")
		}
		row(tw, "  Script Length", fmt.Sprintf("%d bytes", out.ScriptLen))
		if out.ScriptAsm != "" {
			row(tw, "  Script PubKey", out.ScriptAsm)
		}
		row(tw, "  Script Hex", out.ScriptHex)
	}

	section(tw, "SUMMARY")
	row(tw, "Total Output Value", fmt.Sprintf("%s BTC (%d satoshis)", r.TotalOutputBTC, r.TotalOutputSats))
	row(tw, "Number of Inputs", fmt.Sprintf("%d", r.InputCount))
	row(tw, "Number of Outputs", fmt.Sprintf("%d", r.OutputCount))
	fmt.Fprintln(tw)

	return tw.Flush()
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n%s\n", title, strings.Repeat("-", len(title)))
}

func row(w io.Writer, label, value string) {
	fmt.Fprintf(w, "%s\t%s\n", label, value)
}
