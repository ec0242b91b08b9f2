// Package cli is the deterministic boundary of the tool: it canonicalizes
// and validates every command-line input into a world.World before any
// generation logic runs, and maps failures to semantic exit codes.
package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	apperrors "worldforge/internal/shared/errors"
	"worldforge/internal/world"
)

// Generator runs the world generation pipeline. Satisfied by
// *world.Service.
type Generator interface {
	Generate(world.World) world.World
}

// floatArg is a pflag.Value that retains the literal command-line token
// alongside the parsed number, so diagnostics echo exactly what the user
// typed rather than a re-formatted float.
type floatArg struct {
	raw   string
	value float64
}

func newFloatArg(v float64) floatArg {
	return floatArg{raw: strconv.FormatFloat(v, 'g', -1, 64), value: v}
}

func (f *floatArg) String() string { return f.raw }

func (f *floatArg) Set(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	f.raw = s
	f.value = v
	return nil
}

func (f *floatArg) Type() string { return "float" }

// options collects the raw flag values before domain validation.
type options struct {
	mass            floatArg
	massStar        floatArg
	distanceStar    floatArg
	satelliteMass   floatArg
	distancePrimary floatArg
	age             floatArg
	density         floatArg
	ecc             floatArg
	luminosity      floatArg
	metal           floatArg
	outsideIceLine  bool
	grandTack       bool
	rockySat        bool
	oortCloud       bool
	greenHouse      bool
}

// NewRootCommand builds the worldforge command. The generated report is
// written to the command's stdout writer.
func NewRootCommand(gen Generator) *cobra.Command {
	opts := &options{
		mass:            newFloatArg(1.0),
		massStar:        newFloatArg(1.0),
		distanceStar:    newFloatArg(1.0),
		satelliteMass:   newFloatArg(0.0123),
		distancePrimary: newFloatArg(384400),
		age:             newFloatArg(4.568),
		density:         newFloatArg(1.0),
		ecc:             newFloatArg(0.0),
		luminosity:      newFloatArg(1.0),
		metal:           newFloatArg(1.0),
	}

	cmd := &cobra.Command{
		Use:   "worldforge <name> <type>",
		Short: "Create worlds.",
		Long: `Create worlds.

Derives the physical parameters of a fictional celestial body from a few
scalar inputs. The type argument is one of:

  lone       a planet orbiting a star with no satellite
  orbited    a planet orbiting a star, with one satellite
  satellite  a world orbiting a primary planet`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return apperrors.Usagef("expected <name> <type> arguments, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := buildWorld(args[0], args[1], opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), gen.Generate(w).Describe())
			return nil
		},
	}

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return apperrors.WrapUsage("invalid arguments", err)
	})

	flags := cmd.Flags()
	flags.VarP(&opts.mass, "mass", "m", "Mass of primary in Earth masses")
	flags.VarP(&opts.massStar, "mass_star", "M", "Mass of star in Sol masses")
	flags.VarP(&opts.distanceStar, "distance_star", "D", "Distance of star in AU")
	flags.VarP(&opts.satelliteMass, "satellite_mass", "s", "Mass of satellite in Earth masses")
	flags.VarP(&opts.distancePrimary, "distance_primary", "d", "Distance of satellite in km")
	flags.VarP(&opts.age, "age", "a", "Age of system in billions of years")
	flags.VarP(&opts.density, "density", "k", "Density of world in earth densities")
	flags.VarP(&opts.ecc, "ecc", "e", "Eccentricity of orbit")
	flags.VarP(&opts.luminosity, "luminosity", "l", "Luminosity of star in multiples of solar luminosity")
	flags.Var(&opts.metal, "metal", "Metallicity of system, with Sol being 1")
	flags.BoolVarP(&opts.outsideIceLine, "outside_ice_line", "o", false, "Is outside formation ice line")
	flags.BoolVarP(&opts.grandTack, "grand_tack", "g", false, "System has undergone Grand Tack event")
	flags.BoolVarP(&opts.rockySat, "rocky_sat", "r", false, "World is rocky satellite of gas giant")
	flags.BoolVar(&opts.oortCloud, "oort_cloud", false, "Planet in Oort cloud")
	flags.BoolVar(&opts.greenHouse, "green_house", false, "Planet has experienced runaway greenhouse event")

	return cmd
}

// Execute runs the command against args, writing the report to out and
// diagnostics to errOut, and returns the process exit code. Stdout stays
// untouched on failure; the error and the usage block both go to errOut.
func Execute(gen Generator, out, errOut io.Writer, args []string) int {
	cmd := NewRootCommand(gen)
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		fmt.Fprint(errOut, cmd.UsageString())
		return apperrors.ExitCode(err)
	}
	return apperrors.ExitSuccess
}

// buildWorld validates the raw inputs and assembles the canonical World.
// Everything downstream assumes these checks have passed.
func buildWorld(name, typeToken string, opts *options) (world.World, error) {
	if strings.TrimSpace(name) == "" {
		return world.World{}, apperrors.Usagef("name must not be empty")
	}

	var worldType world.WorldType
	switch typeToken {
	case "lone":
		worldType = world.TypeLone
	case "orbited":
		worldType = world.TypeOrbited
	case "satellite":
		worldType = world.TypeSatellite
	default:
		return world.World{}, apperrors.Usagef("invalid world type %q (expected lone, orbited or satellite)", typeToken)
	}

	positives := []floatArg{
		opts.mass,
		opts.massStar,
		opts.distanceStar,
		opts.satelliteMass,
		opts.distancePrimary,
		opts.age,
		opts.density,
		opts.luminosity,
		opts.metal,
	}
	for _, a := range positives {
		if a.value <= 0 {
			return world.World{}, apperrors.Domainf("%q should be a positive float", a.raw)
		}
	}
	if opts.ecc.value < 0 {
		return world.World{}, apperrors.Domainf("%q should be zero or a positive float", opts.ecc.raw)
	}

	w := world.New(name, worldType)
	w.PlanetMass = opts.mass.value
	w.StarMass = opts.massStar.value
	w.StarDistance = opts.distanceStar.value
	w.SatelliteMass = opts.satelliteMass.value
	w.PrimaryDistance = opts.distancePrimary.value
	w.Age = opts.age.value
	w.Ecc = opts.ecc.value
	w.Density = opts.density.value
	w.Luminosity = opts.luminosity.value
	w.Metal = opts.metal.value
	w.OutsideIceLine = opts.outsideIceLine
	w.GrandTack = opts.grandTack
	w.RockySatOfGasGiant = opts.rockySat
	w.OortCloud = opts.oortCloud
	w.GreenHouse = opts.greenHouse
	return w, nil
}
