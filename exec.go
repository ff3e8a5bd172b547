package mipmap

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"
	"time"

	"github.com/buzztimer/mipmap/utils"
	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// errCancelled is reported by jobs skipped after an earlier job failed.
var errCancelled = errors.New("generation cancelled")

// Generator renders the icon for every density and writes both variants.
// Use NewGenerator to get one with the default density table and PNG output.
type Generator struct {
	BaseDir   string
	Format    imaging.Format
	Workers   int
	Densities []Density
	Sink      Sink
	Spinner   *utils.Spinner
}

// NewGenerator returns a generator writing PNG icons of every density under baseDir.
func NewGenerator(baseDir string) *Generator {
	return &Generator{
		BaseDir:   baseDir,
		Format:    imaging.PNG,
		Densities: Densities,
		Sink:      FileSink{},
	}
}

// Result holds the outcome of generating the icons of one density.
type Result struct {
	Density Density
	Targets Targets
	Err     error
}

// job is one density waiting to be rendered, along with its position in the table.
type job struct {
	idx     int
	density Density
}

// Generate renders and saves the icons of every density concurrently.
// Results are returned in the order of the density table. The first failure
// stops the jobs that have not started yet and is returned as the error.
func (g *Generator) Generate() ([]Result, error) {
	densities := g.densities()
	workers := g.Workers
	if workers <= 0 || workers > maxWorkers {
		workers = runtime.NumCPU()
	}

	var (
		wg      sync.WaitGroup
		once    sync.Once
		results = make([]Result, len(densities))
		jobs    = make(chan job)
		ch      = make(chan job)
		done    = make(chan struct{})
	)

	go func() {
		defer close(jobs)
		for i, d := range densities {
			select {
			case <-done:
				return
			case jobs <- job{idx: i, density: d}:
			}
		}
	}()

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			g.consumer(jobs, ch, results)
		}()
	}

	// Close the channel after the values are consumed.
	go func() {
		defer close(ch)
		wg.Wait()
	}()

	var err error
	for j := range ch {
		if res := results[j.idx]; res.Err != nil && err == nil {
			err = res.Err
			once.Do(func() { close(done) })
		}
	}
	once.Do(func() { close(done) })

	for i := range results {
		if results[i].Density.Name == "" {
			results[i] = Result{Density: densities[i], Err: errCancelled}
		}
	}
	return results, err
}

// consumer reads the densities from the jobs channel, generates their icons
// and reports back every finished job on the res channel.
func (g *Generator) consumer(jobs <-chan job, res chan<- job, results []Result) {
	for j := range jobs {
		targets, err := g.generate(j.density)
		results[j.idx] = Result{
			Density: j.density,
			Targets: targets,
			Err:     err,
		}
		res <- j
	}
}

// generate renders the icon of a single density once and saves it as every variant.
func (g *Generator) generate(d Density) (Targets, error) {
	targets, err := Provision(g.BaseDir, d, g.Format)
	if err != nil {
		return Targets{}, err
	}

	icon := Render(d.Size)
	for _, v := range Variants {
		if err := g.sink().Save(icon, targets.Path(v), g.Format); err != nil {
			return targets, err
		}
	}
	return targets, nil
}

// Execute runs the generation from the command line. Progress is reported
// on stderr and a failed write terminates the program.
func (g *Generator) Execute() {
	if g.Spinner != nil {
		// Capture CTRL-C signal and restores back the cursor visibility.
		signalChan := make(chan os.Signal, 1)
		signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-signalChan
			g.Spinner.RestoreCursor()
			os.Exit(1)
		}()
		g.Spinner.Start()
	}

	now := time.Now()
	results, err := g.Generate()

	if g.Spinner != nil {
		g.Spinner.StopMsg = g.stopMsg(err)
		g.Spinner.Stop()
	}

	for _, res := range results {
		g.printOpStatus(res)
	}
	if err != nil {
		log.Fatalf(utils.DecorateText("\nIcon generation failed: %v\n", utils.ErrorMessage), err)
	}

	fmt.Fprintln(os.Stderr, utils.DecorateText("Icon generation complete!", utils.SuccessMessage))
	fmt.Fprintln(os.Stderr, "All fallback launcher icons have been created for older Android versions.")
	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n", utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
}

// printOpStatus displays the relevant information about a generated density.
func (g *Generator) printOpStatus(res Result) {
	if res.Err != nil {
		if errors.Is(res.Err, errCancelled) {
			return
		}
		fmt.Fprintf(os.Stderr, "%s %s\n",
			utils.DecorateText(fmt.Sprintf("Error generating %s icons:", res.Density.Name), utils.ErrorMessage),
			utils.DecorateText(res.Err.Error(), utils.DefaultMessage),
		)
		return
	}
	fmt.Fprintf(os.Stderr, "Generated %s icons: %s\n",
		utils.DecorateText(res.Density.Name, utils.StatusMessage),
		utils.DecorateText(fmt.Sprintf("%dx%d pixels", res.Density.Size, res.Density.Size), utils.DefaultMessage),
	)
}

func (g *Generator) stopMsg(err error) string {
	if err != nil {
		return fmt.Sprintf("%s %s\n",
			utils.DecorateText("⏰ MIPMAP", utils.StatusMessage),
			utils.DecorateText("generating icons failed... ✘", utils.ErrorMessage),
		)
	}
	return fmt.Sprintf("%s %s\n",
		utils.DecorateText("⏰ MIPMAP", utils.StatusMessage),
		utils.DecorateText("the icons have been generated successfully ✔", utils.SuccessMessage),
	)
}

func (g *Generator) densities() []Density {
	if g.Densities == nil {
		return Densities
	}
	return g.Densities
}

func (g *Generator) sink() Sink {
	if g.Sink == nil {
		return FileSink{}
	}
	return g.Sink
}
