package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestInitCommandFlags(t *testing.T) {
	app := &cli.App{
		Name: "vecshuffle",
		Commands: []*cli.Command{
			{
				Name:   "init",
				Action: initCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Required: true,
					},
					&cli.StringFlag{
						Name:     "token",
						Aliases:  []string{"t"},
						Required: true,
					},
					&cli.StringFlag{
						Name:     "initializer",
						Aliases:  []string{"i"},
						Required: true,
					},
					&cli.IntFlag{
						Name:  "num-vectors",
						Value: 1,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:     "embedding-model",
						Required: true,
					},
				},
			},
		},
	}

	t.Run("missing db flag fails", func(t *testing.T) {
		args := []string{"vecshuffle", "init", "--token", "<cat>", "--initializer", "cat", "--embedding-model", "test-model"}
		err := app.Run(args)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db")
	})

	t.Run("missing token flag fails", func(t *testing.T) {
		args := []string{"vecshuffle", "init", "--db", "/tmp/test", "--initializer", "cat", "--embedding-model", "test-model"}
		err := app.Run(args)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "token")
	})

	t.Run("missing embedding-model flag fails", func(t *testing.T) {
		args := []string{"vecshuffle", "init", "--db", "/tmp/test", "--token", "<cat>", "--initializer", "cat"}
		err := app.Run(args)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "embedding-model")
	})

	t.Run("num-vectors has default value of 1", func(t *testing.T) {
		cmd := app.Commands[0]
		var countFlag *cli.IntFlag
		for _, flag := range cmd.Flags {
			if f, ok := flag.(*cli.IntFlag); ok && f.Name == "num-vectors" {
				countFlag = f
				break
			}
		}
		require.NotNil(t, countFlag)
		assert.Equal(t, 1, countFlag.Value)
	})

	t.Run("embedding-host has default value", func(t *testing.T) {
		cmd := app.Commands[0]
		var hostFlag *cli.StringFlag
		for _, flag := range cmd.Flags {
			if f, ok := flag.(*cli.StringFlag); ok && f.Name == "embedding-host" {
				hostFlag = f
				break
			}
		}
		require.NotNil(t, hostFlag)
		assert.Equal(t, "http://localhost:11434/v1", hostFlag.Value)
	})
}

func TestShuffleCommandFlags(t *testing.T) {
	app := &cli.App{
		Name: "vecshuffle",
		Commands: []*cli.Command{
			{
				Name:   "shuffle",
				Action: shuffleCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Required: true,
					},
					&cli.StringFlag{
						Name:     "token",
						Aliases:  []string{"t"},
						Required: true,
					},
					&cli.StringFlag{
						Name:    "mode",
						Aliases: []string{"m"},
						Value:   "all",
					},
				},
			},
		},
	}

	t.Run("missing token flag fails", func(t *testing.T) {
		args := []string{"vecshuffle", "shuffle", "--db", "/tmp/test"}
		err := app.Run(args)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "token")
	})

	t.Run("mode defaults to all", func(t *testing.T) {
		cmd := app.Commands[0]
		var modeFlag *cli.StringFlag
		for _, flag := range cmd.Flags {
			if f, ok := flag.(*cli.StringFlag); ok && f.Name == "mode" {
				modeFlag = f
				break
			}
		}
		require.NotNil(t, modeFlag)
		assert.Equal(t, "all", modeFlag.Value)
	})
}

func TestSetupLogger(t *testing.T) {
	t.Run("valid log levels", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected slog.Level
		}{
			{"debug", slog.LevelDebug},
			{"info", slog.LevelInfo},
			{"warn", slog.LevelWarn},
			{"error", slog.LevelError},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				app := &cli.App{
					Name: "test",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:  "log-level",
							Value: tc.input,
						},
					},
					Before: setupLogger,
					Action: func(c *cli.Context) error {
						return nil
					},
				}

				err := app.Run([]string{"test", "--log-level", tc.input})
				require.NoError(t, err)
			})
		}
	})

	t.Run("case insensitive log levels", func(t *testing.T) {
		for _, tc := range []string{"DEBUG", "Info", "WaRn", "ERROR"} {
			t.Run(tc, func(t *testing.T) {
				app := &cli.App{
					Name: "test",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:  "log-level",
							Value: "info",
						},
					},
					Before: setupLogger,
					Action: func(c *cli.Context) error {
						return nil
					},
				}

				err := app.Run([]string{"test", "--log-level", tc})
				require.NoError(t, err)
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		app := &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "log-level",
					Value: "info",
				},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error {
				return nil
			},
		}

		err := app.Run([]string{"test", "--log-level", "invalid"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}
