//go:build integration

package steps

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"clipjoin/cmd"
	"clipjoin/domain/video"
	"clipjoin/infrastructure/ffmpeg"

	"github.com/cucumber/godog"
)

// fakeRunner stands in for the ffmpeg binary: it records argv and
// creates the output file (always the last argument) in memFiles
type fakeRunner struct {
	files  *memFiles
	failOn string
	calls  [][]string
}

func (r *fakeRunner) Run(ctx context.Context, name string, args ...string) error {
	r.calls = append(r.calls, args)
	r.files.existing[args[len(args)-1]] = true
	if r.failOn != "" && argValue(args, "-i") == r.failOn {
		return errors.New("exit status 1")
	}
	return nil
}

func (r *fakeRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return []byte("ffmpeg version test"), nil
}

func (r *fakeRunner) cutCalls() [][]string {
	var out [][]string
	for _, c := range r.calls {
		if argValue(c, "-filter_complex") == "" {
			out = append(out, c)
		}
	}
	return out
}

func (r *fakeRunner) combineCalls() [][]string {
	var out [][]string
	for _, c := range r.calls {
		if argValue(c, "-filter_complex") != "" {
			out = append(out, c)
		}
	}
	return out
}

// argValue returns the value following the first occurrence of flag
func argValue(args []string, flag string) string {
	for i := 0; i < len(args)-1; i++ {
		if args[i] == flag {
			return args[i+1]
		}
	}
	return ""
}

// memFiles simulates the working directory
type memFiles struct {
	existing map[string]bool
}

func (m *memFiles) Exists(path string) bool { return m.existing[path] }

func (m *memFiles) Move(src, dst string) error {
	if !m.existing[src] {
		return fmt.Errorf("no such file: %s", src)
	}
	delete(m.existing, src)
	m.existing[dst] = true
	return nil
}

func (m *memFiles) RemoveIfExists(path string) error {
	delete(m.existing, path)
	return nil
}

// scriptedPrompter answers the confirmation with a fixed value
type scriptedPrompter struct {
	answer bool
	asked  int
}

func (p *scriptedPrompter) Input(message string, defaultValue string) (string, error) {
	return defaultValue, nil
}

func (p *scriptedPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	p.asked++
	return p.answer, nil
}

// joinContext holds test state for join and duration scenarios
type joinContext struct {
	workDir    string
	outputPath string
	clips      *video.ClipSet
	files      *memFiles
	runner     *fakeRunner
	prompter   *scriptedPrompter
	output     *bytes.Buffer
	err        error
}

// SharedJoinContext is reset before each scenario via Before hook
var SharedJoinContext *joinContext

func getJoinContext() *joinContext {
	return SharedJoinContext
}

func InitializeJoinScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		files := &memFiles{existing: make(map[string]bool)}
		SharedJoinContext = &joinContext{
			clips:    video.NewClipSet(),
			files:    files,
			runner:   &fakeRunner{files: files},
			prompter: &scriptedPrompter{},
			output:   &bytes.Buffer{},
		}
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		SharedJoinContext = nil
		return c, nil
	})

	ctx.Step(`^the working directory is "([^"]*)"$`, theWorkingDirectoryIs)
	ctx.Step(`^the output file is "([^"]*)"$`, theOutputFileIs)
	ctx.Step(`^source videos "([^"]*)" exist$`, sourceVideosExist)
	ctx.Step(`^the clips:$`, theClips)
	ctx.Step(`^no clips$`, noClips)
	ctx.Step(`^I add clip "([^"]*)" from "([^"]*)" to "([^"]*)"$`, iAddClipFromTo)
	ctx.Step(`^I will confirm the run$`, iWillConfirmTheRun)
	ctx.Step(`^I will decline the run$`, iWillDeclineTheRun)
	ctx.Step(`^ffmpeg fails when cutting "([^"]*)"$`, ffmpegFailsWhenCutting)
	ctx.Step(`^I run the join$`, iRunTheJoin)
	ctx.Step(`^I estimate the duration$`, iEstimateTheDuration)
	ctx.Step(`^the estimated duration should be "([^"]*)"$`, theEstimatedDurationShouldBe)
	ctx.Step(`^I should receive an error containing "([^"]*)"$`, iShouldReceiveAnErrorContaining)
	ctx.Step(`^ffmpeg should have cut:$`, ffmpegShouldHaveCut)
	ctx.Step(`^ffmpeg should have cut (\d+) clips?$`, ffmpegShouldHaveCutN)
	ctx.Step(`^ffmpeg should have combined "([^"]*)"$`, ffmpegShouldHaveCombined)
	ctx.Step(`^ffmpeg should not have combined anything$`, ffmpegShouldNotHaveCombinedAnything)
	ctx.Step(`^the output should contain "([^"]*)"$`, theOutputShouldContain)
	ctx.Step(`^the final output should exist$`, theFinalOutputShouldExist)
	ctx.Step(`^no intermediate files should remain$`, noIntermediateFilesShouldRemain)
}

func theWorkingDirectoryIs(dir string) error {
	getJoinContext().workDir = dir
	return nil
}

func theOutputFileIs(path string) error {
	getJoinContext().outputPath = path
	return nil
}

func sourceVideosExist(list string) error {
	j := getJoinContext()
	for _, name := range splitList(list) {
		j.files.existing[j.workDir+"/"+name] = true
	}
	return nil
}

func theClips(table *godog.Table) error {
	j := getJoinContext()
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header row
		}
		req, err := video.NewClipRequest(row.Cells[0].Value, row.Cells[1].Value, row.Cells[2].Value)
		if err != nil {
			return err
		}
		j.clips.Add(req)
	}
	return nil
}

func noClips() error {
	getJoinContext().clips = video.NewClipSet()
	return nil
}

func iAddClipFromTo(file, start, end string) error {
	j := getJoinContext()
	req, err := video.NewClipRequest(file, start, end)
	if err != nil {
		j.err = err
		return nil
	}
	j.clips.Add(req)
	return nil
}

func iWillConfirmTheRun() error {
	getJoinContext().prompter.answer = true
	return nil
}

func iWillDeclineTheRun() error {
	getJoinContext().prompter.answer = false
	return nil
}

func ffmpegFailsWhenCutting(name string) error {
	j := getJoinContext()
	j.runner.failOn = j.workDir + "/" + name
	return nil
}

func iRunTheJoin() error {
	j := getJoinContext()

	cutter := ffmpeg.NewCutter(ffmpeg.WithCommandRunner(j.runner))
	combiner := ffmpeg.NewCombiner(ffmpeg.WithCommandRunner(j.runner))

	j.err = cmd.RunJoinWithDependencies(
		context.Background(),
		cutter,
		combiner,
		j.files,
		j.prompter,
		cmd.JoinOptions{
			WorkDir:    j.workDir,
			OutputPath: j.outputPath,
			Clips:      j.clips,
			Jobs:       1,
		},
		j.output,
	)
	return nil
}

func iEstimateTheDuration() error {
	j := getJoinContext()
	j.err = cmd.RunDurationWithDependencies(j.clips, j.output)
	return j.err
}

func theEstimatedDurationShouldBe(expected string) error {
	return theOutputShouldContain("Total duration of the final video will be: " + expected)
}

func iShouldReceiveAnErrorContaining(text string) error {
	j := getJoinContext()
	if j.err == nil {
		return fmt.Errorf("expected an error but got none")
	}
	if !strings.Contains(j.err.Error(), text) {
		return fmt.Errorf("expected error containing %q, got: %v", text, j.err)
	}
	return nil
}

func ffmpegShouldHaveCut(table *godog.Table) error {
	j := getJoinContext()
	if j.err != nil {
		return fmt.Errorf("unexpected error: %v", j.err)
	}

	calls := j.runner.cutCalls()
	if len(calls) != len(table.Rows)-1 {
		return fmt.Errorf("expected %d cuts, got %d", len(table.Rows)-1, len(calls))
	}

	for i, row := range table.Rows[1:] {
		call := calls[i]
		want := map[string]string{
			"-i":  row.Cells[0].Value,
			"-ss": row.Cells[2].Value,
			"-to": row.Cells[3].Value,
		}
		for flag, value := range want {
			if got := argValue(call, flag); got != value {
				return fmt.Errorf("cut %d: %s = %q, want %q (args %v)", i+1, flag, got, value, call)
			}
		}
		if got := call[len(call)-1]; got != row.Cells[1].Value {
			return fmt.Errorf("cut %d: output = %q, want %q", i+1, got, row.Cells[1].Value)
		}
		if argValue(call, "-avoid_negative_ts") != "1" {
			return fmt.Errorf("cut %d: missing -avoid_negative_ts 1 in %v", i+1, call)
		}
	}
	return nil
}

func ffmpegShouldHaveCutN(n int) error {
	if got := len(getJoinContext().runner.cutCalls()); got != n {
		return fmt.Errorf("expected %d cuts, got %d", n, got)
	}
	return nil
}

func ffmpegShouldHaveCombined(list string) error {
	j := getJoinContext()
	calls := j.runner.combineCalls()
	if len(calls) != 1 {
		return fmt.Errorf("expected exactly one combine call, got %d", len(calls))
	}

	var inputs []string
	call := calls[0]
	for i := 0; i < len(call)-1; i++ {
		if call[i] == "-i" {
			inputs = append(inputs, call[i+1])
		}
	}

	want := splitList(list)
	if strings.Join(inputs, ",") != strings.Join(want, ",") {
		return fmt.Errorf("combined inputs = %v, want %v", inputs, want)
	}
	if got, wantFilter := argValue(call, "-filter_complex"), ffmpeg.ConcatFilter(len(want)); got != wantFilter {
		return fmt.Errorf("filter = %q, want %q", got, wantFilter)
	}
	return nil
}

func ffmpegShouldNotHaveCombinedAnything() error {
	if got := len(getJoinContext().runner.combineCalls()); got != 0 {
		return fmt.Errorf("expected no combine calls, got %d", got)
	}
	return nil
}

func theOutputShouldContain(text string) error {
	j := getJoinContext()
	if !strings.Contains(j.output.String(), text) {
		return fmt.Errorf("output does not contain %q:\n%s", text, j.output.String())
	}
	return nil
}

func theFinalOutputShouldExist() error {
	j := getJoinContext()
	if j.err != nil {
		return fmt.Errorf("unexpected error: %v", j.err)
	}
	if !j.files.existing[j.outputPath] {
		return fmt.Errorf("final output %s does not exist", j.outputPath)
	}
	return nil
}

func noIntermediateFilesShouldRemain() error {
	j := getJoinContext()
	for path := range j.files.existing {
		base := path[strings.LastIndex(path, "/")+1:]
		if strings.HasPrefix(base, video.IntermediatePrefix) {
			return fmt.Errorf("intermediate file %s was left behind", path)
		}
	}
	return nil
}

func splitList(list string) []string {
	var out []string
	for _, item := range strings.Split(list, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
