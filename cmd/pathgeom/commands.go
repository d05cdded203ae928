package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"honnef.co/go/pathgeom"
	"honnef.co/go/pathgeom/effect"
)

func (a *app) flattenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "flatten [path]",
		Short: "Print the polylines approximating a path, one point per line",
		Long: `Flatten prints one polyline per figure of the path, separated by empty
lines. The path is read from standard input if it isn't given as an argument.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.readGeometry(cmd, args)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for i, pts := range g.Flatten(a.cfg.Tolerance) {
				if i > 0 {
					if _, err := fmt.Fprintln(w); err != nil {
						return err
					}
				}
				if err := a.writePolyline(w, pts); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) writePolyline(w io.Writer, pts []pathgeom.Point) error {
	if a.fixed {
		if p, err := pathgeom.NewPolyline(pts); err == nil {
			for _, fp := range p.Fixed() {
				if _, err := fmt.Fprintf(w, "%d %d\n", int32(fp.X), int32(fp.Y)); err != nil {
					return err
				}
			}
			return nil
		}
	}
	for _, pt := range pts {
		if err := a.writePoint(w, pt); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) sketchCmd() *cobra.Command {
	var seed uint64
	cmd := &cobra.Command{
		Use:   "sketch [path]",
		Short: "Apply the sketch effect to a path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.readGeometry(cmd, args)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				a.cfg.Seed = seed
			}
			shape := effect.NewPath(g)
			shape.SetGeometryEffect(effect.NewSketch(a.cfg.Seed))
			out, _ := shape.Arrange(g.Bounds())
			return a.writeGeometry(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed")
	return cmd
}

func (a *app) writeGeometry(w io.Writer, g *pathgeom.Geometry) error {
	if g == nil {
		g = &pathgeom.Geometry{}
	}
	if err := pathgeom.WriteText(w, g, a.formatOptions()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

func (a *app) marchCmd() *cobra.Command {
	var (
		step         float64
		corner       float64
		cornerRadius float64
	)
	cmd := &cobra.Command{
		Use:   "march [path]",
		Short: "Sample a path at equal arc-length intervals",
		Long: `March flattens every figure of the path and walks along it, printing the
reason, position, normal and arc length of every stop. With --corner, vertices
sharper than the given angle in degrees are reported as well.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.readGeometry(cmd, args)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("step") {
				a.cfg.Step = step
			}
			if flags.Changed("corner-radius") {
				a.cfg.CornerRadius = cornerRadius
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			num := func(n float64) string { return pathgeom.FormatNumber(n, a.formatOptions()) }
			var werr error
			for i, pts := range g.Flatten(a.cfg.Tolerance) {
				p, err := pathgeom.NewPolyline(pts)
				if err != nil {
					// Figures without segments have nothing to march along.
					continue
				}
				if i > 0 {
					if _, err := fmt.Fprintln(w); err != nil {
						return err
					}
				}
				err = pathgeom.MarchCorners(p, 0, 0, corner, func(loc pathgeom.MarchLocation) float64 {
					pt := loc.Point(p)
					n := loc.Normal(p, a.cfg.CornerRadius)
					_, werr = fmt.Fprintf(w, "%s %s %s %s %s %s\n", loc.Reason,
						num(pt.X), num(pt.Y), num(n.X), num(n.Y), num(loc.ArcLength(p)))
					if werr != nil {
						return math.NaN()
					}
					switch loc.Reason {
					case pathgeom.CompleteStep:
						return a.cfg.Step
					case pathgeom.CornerPoint:
						return loc.Remain
					default:
						return math.NaN()
					}
				})
				if err != nil {
					return err
				}
				if werr != nil {
					return werr
				}
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.Float64Var(&step, "step", 8, "distance between samples")
	flags.Float64Var(&corner, "corner", 0, "report vertices sharper than this many `degrees` (0 disables)")
	flags.Float64Var(&cornerRadius, "corner-radius", 0, "blend normals within this distance of corners")
	return cmd
}

func parseStretch(s string) (pathgeom.Stretch, error) {
	for _, st := range []pathgeom.Stretch{
		pathgeom.StretchNone,
		pathgeom.StretchFill,
		pathgeom.StretchUniform,
		pathgeom.StretchUniformToFill,
	} {
		if strings.EqualFold(s, st.String()) {
			return st, nil
		}
	}
	return 0, fmt.Errorf("unknown stretch %q", s)
}

func (a *app) polygonCmd() *cobra.Command {
	var (
		points  float64
		inner   float64
		width   float64
		height  float64
		stroke  float64
		stretch string
		name    string
		seed    uint64
	)
	cmd := &cobra.Command{
		Use:   "polygon",
		Short: "Print a regular polygon or star",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := parseStretch(stretch)
			if err != nil {
				return err
			}
			e, ok := effect.Lookup(name)
			if !ok {
				return fmt.Errorf("unknown effect %q, known effects: %s", name, strings.Join(effect.Names(), ", "))
			}
			if cmd.Flags().Changed("seed") {
				a.cfg.Seed = seed
			}
			if _, ok := e.(*effect.SketchEffect); ok {
				e = effect.NewSketch(a.cfg.Seed)
			}

			p := effect.NewRegularPolygon()
			p.SetPointCount(points)
			p.SetInnerRadius(inner)
			p.SetStretch(st)
			if stroke != 0 {
				p.SetStroke(stroke)
			}
			p.SetGeometryEffect(e)
			g, _ := p.Arrange(pathgeom.Rect{X1: width, Y1: height})
			return a.writeGeometry(cmd.OutOrStdout(), g)
		},
	}
	flags := cmd.Flags()
	flags.Float64Var(&points, "points", 6, "number of corners, 3 to 100")
	flags.Float64Var(&inner, "inner", 1, "inner radius of a star relative to the outer radius, 0 to 1")
	flags.Float64Var(&width, "width", 100, "width of the layout bounds")
	flags.Float64Var(&height, "height", 100, "height of the layout bounds")
	flags.Float64Var(&stroke, "stroke", 0, "stroke thickness the shape is inset by")
	flags.StringVar(&stretch, "stretch", "Fill", "how to fit the polygon into its bounds: None, Fill, Uniform or UniformToFill")
	flags.StringVar(&name, "effect", "None", "geometry effect to apply")
	flags.Uint64Var(&seed, "seed", 0, "random seed of the sketch effect")
	return cmd
}

func (a *app) arcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "arc x0 y0 rx ry rotation large-arc sweep x1 y1",
		Short: "Convert an elliptical arc to cubic Béziers",
		Long: `Arc prints the kind of approximation of the arc from (x0, y0) to (x1, y1),
followed by its points. The rotation is in degrees; large-arc and sweep are
booleans, with a sweep of 1 meaning clockwise.`,
		Args: cobra.ExactArgs(9),
		RunE: func(cmd *cobra.Command, args []string) error {
			var nums [7]float64
			for i, idx := range []int{0, 1, 2, 3, 4, 7, 8} {
				v, err := strconv.ParseFloat(args[idx], 64)
				if err != nil {
					return fmt.Errorf("argument %d: %w", idx+1, err)
				}
				nums[i] = v
			}
			large, err := strconv.ParseBool(args[5])
			if err != nil {
				return fmt.Errorf("large-arc: %w", err)
			}
			sweep, err := strconv.ParseBool(args[6])
			if err != nil {
				return fmt.Errorf("sweep: %w", err)
			}

			start := pathgeom.Pt(nums[0], nums[1])
			end := pathgeom.Pt(nums[5], nums[6])
			approx := pathgeom.ArcToBezier(start, pathgeom.Sz(nums[2], nums[3]), nums[4], large, sweep, end)
			w := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(w, approx.Kind); err != nil {
				return err
			}
			for _, pt := range approx.Points {
				if err := a.writePoint(w, pt); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
