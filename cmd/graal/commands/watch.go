package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aetheriaxai/graal/internal/bytesize"
	"github.com/aetheriaxai/graal/internal/cli/output"
	"github.com/aetheriaxai/graal/internal/logger"
	"github.com/aetheriaxai/graal/pkg/managed"
	"github.com/spf13/cobra"
)

var (
	watchTimeout   time.Duration
	watchInterval  time.Duration
	watchThreshold string
)

var watchCmd = &cobra.Command{
	Use:   "watch OBJECT",
	Short: "Stream events from a catalog emitter",
	Long: `Subscribe to an emitter object and print its events as they arrive.

Objects that sample on demand, such as the memory emitter, are driven at
--interval while the watch runs. The command stops on Ctrl+C or when
--timeout elapses.

Examples:
  # Watch memory threshold events
  graal watch go.runtime:type=Memory --threshold 64MB

  # Stop after 30 seconds
  graal watch go.runtime:type=Memory --threshold 64MB --timeout 30s

  # Emit events as JSON lines
  graal watch go.runtime:type=Memory --threshold 64MB -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchTimeout, "timeout", 0, "Stop watching after this duration (default: config follow_timeout, 0 = until interrupted)")
	watchCmd.Flags().DurationVar(&watchInterval, "interval", time.Second, "Sampling interval for objects that observe on demand")
	watchCmd.Flags().StringVar(&watchThreshold, "threshold", "", "Memory threshold override, e.g. 64MB (default: config memory_threshold)")
}

// EventRecord is one received event prepared for output.
type EventRecord struct {
	Source    string    `json:"source" yaml:"source"`
	Type      string    `json:"type" yaml:"type"`
	Sequence  uint64    `json:"sequence" yaml:"sequence"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Message   string    `json:"message,omitempty" yaml:"message,omitempty"`
}

// observable is the surface of objects that sample on demand.
type observable interface {
	Observe()
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := InitLogger(cfg); err != nil {
		return err
	}

	name, err := managed.ParseName(args[0])
	if err != nil {
		return fmt.Errorf("invalid object name %q: %w", args[0], err)
	}

	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return err
	}

	if watchThreshold != "" {
		size, err := bytesize.ParseByteSize(watchThreshold)
		if err != nil {
			return fmt.Errorf("invalid --threshold: %w", err)
		}
		cfg.Catalog.MemoryThreshold = size
	}

	support, srv, err := materializeCatalog(cfg)
	if err != nil {
		return err
	}

	timeout := watchTimeout
	if timeout == 0 {
		timeout = cfg.Catalog.FollowTimeout
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	events, err := srv.Subscribe(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", name, err)
	}

	// Drive on-demand sampling for the watched object, if it supports it.
	if obs := findObservable(support.Registry().Objects(), name); obs != nil {
		go func() {
			ticker := time.NewTicker(watchInterval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					obs.Observe()
				}
			}
		}()
	}

	// Stop on interrupt
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	logger.InfoCtx(ctx, "watching for events", "object", name.String(), "timeout", timeout)

	received := 0
	for ev := range events {
		record := EventRecord{
			Source:    ev.Source.String(),
			Type:      ev.Type,
			Sequence:  ev.Sequence,
			Timestamp: ev.Timestamp,
			Message:   ev.Message,
		}
		if err := printEvent(format, record); err != nil {
			return err
		}
		received++
	}

	logger.DebugCtx(ctx, "watch ended", "object", name.String(), "events", received)
	return nil
}

// findObservable returns the live object registered under name if it
// samples on demand, nil otherwise.
func findObservable(objects []managed.Object, name managed.Name) observable {
	for _, obj := range objects {
		if obj.ObjectName() == name {
			if obs, ok := obj.(observable); ok {
				return obs
			}
			return nil
		}
	}
	return nil
}

// printEvent prints one event in the requested format. Machine formats emit
// one compact JSON object per line; table format uses a single-line text
// rendering.
func printEvent(format output.Format, record EventRecord) error {
	switch format {
	case output.FormatJSON, output.FormatYAML:
		return output.PrintJSONCompact(os.Stdout, record)
	default:
		if record.Message != "" {
			fmt.Printf("%s  %s  #%d  %s\n",
				record.Timestamp.Format(time.RFC3339), record.Type, record.Sequence, record.Message)
		} else {
			fmt.Printf("%s  %s  #%d\n",
				record.Timestamp.Format(time.RFC3339), record.Type, record.Sequence)
		}
		return nil
	}
}
