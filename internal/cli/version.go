package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/fmueller/wavscribe/internal/version"
	"github.com/fmueller/wavscribe/internal/whisper"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version, inference engine and expected model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeBuildInfo(cmd.OutOrStdout())
		},
	}
}

func writeBuildInfo(w io.Writer) error {
	engine := whisper.Engine
	if engine == "" {
		engine = "not linked (build with -tags whisper_cpp)"
	}

	_, err := fmt.Fprintf(w, "wavscribe v%s\nengine: %s\nmodel:  %s (%s)\ngo:     %s\n",
		version.Resolve(), engine, whisper.LargeV3.FileName, ModelPath, runtime.Version())
	return err
}
