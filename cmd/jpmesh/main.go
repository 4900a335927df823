package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/woozymasta/jpmesh/internal/config"
	"github.com/woozymasta/jpmesh/internal/logger"
	"github.com/woozymasta/jpmesh/internal/output"

	"github.com/jessevdk/go-flags"
	"github.com/paulmach/orb/geojson"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config" env:"JPMESH_CONFIG" description:"Path to scene configuration file"`
	Output     string `short:"o" long:"out"    env:"JPMESH_OUT"    description:"Output file path. Writes to stdout if empty"`
	Format     string `short:"f" long:"format" env:"JPMESH_FORMAT" description:"Output format" choice:"json" choice:"yaml" default:"json"`
	Minify     bool   `short:"m" long:"minify" env:"JPMESH_MINIFY" description:"Minify JSON output"`
}

var opts Options

func main() {
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		opts.Logger.Setup()
		if cmd == nil {
			return nil
		}
		return cmd.Execute(args)
	}

	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.short, c.long, c.data); err != nil {
			log.Fatal().Err(err).Str("command", c.name).Msg("Failed to register command")
		}
	}

	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) {
			if flagsErr.Type == flags.ErrHelp {
				fmt.Fprintln(os.Stdout, err)
				os.Exit(0)
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		log.Fatal().Err(err).Str("command", activeName(parser)).Msg("Command failed")
	}
}

type command struct {
	name  string
	short string
	long  string
	data  any
}

var commands = []command{
	{"decode", "Decode mesh codes", "Decode mesh codes into their south-west corner and extent.", &decodeCommand{}},
	{"encode", "Encode a point", "Encode a latitude/longitude into the mesh code of the given level.", &encodeCommand{}},
	{"zone", "Show projection zone constants", "Show the Gauss-Krüger constants of a registered system or of an arbitrary origin.", &zoneCommand{}},
	{"project", "Project a point", "Project a latitude/longitude to plane rectangular coordinates.", &projectCommand{}},
	{"unproject", "Unproject plane coordinates", "Convert plane rectangular coordinates back to latitude/longitude.", &unprojectCommand{}},
	{"offset", "Local offset of a point", "Compute the local scene offset (X east, Z south) of a point from an origin.", &offsetCommand{}},
	{"tiles", "Plan texture tiles", "Plan the map tiles covering mesh cells and how to crop them into a texture.", &tilesCommand{}},
	{"place", "Place model files", "Position PLATEAU model files relative to the scene origin.", &placeCommand{}},
	{"verify", "Cross-check the projection", "Compare the projection with an independent transverse Mercator for a registered system.", &verifyCommand{}},
}

func activeName(parser *flags.Parser) string {
	if parser.Active == nil {
		return ""
	}
	return parser.Active.Name
}

// loadConfig returns nil when no config file is given.
func loadConfig() (*config.Config, error) {
	if opts.ConfigFile == "" {
		return nil, nil
	}

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", opts.ConfigFile, err)
	}

	log.Debug().Str("path", opts.ConfigFile).Msg("Configuration loaded")
	return cfg, nil
}

func emit(v any) error {
	return output.WriteFile(opts.Output, v, opts.Format, opts.Minify)
}

// emitGeoJSON always writes JSON regardless of --format.
func emitGeoJSON(fc *geojson.FeatureCollection) error {
	return output.WriteFile(opts.Output, fc, output.JSON, opts.Minify)
}
