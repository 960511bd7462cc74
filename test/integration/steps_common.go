package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	"github.com/doodlesbykumbi/artrights/pkg/seed"
)

// StepsContext holds state shared between step definitions
type StepsContext struct {
	tc           *TestContext
	user         string
	response     *http.Response
	responseBody []byte
	remembered   map[string]string
}

// NewStepsContext creates a new steps context
func NewStepsContext(tc *TestContext) *StepsContext {
	return &StepsContext{
		tc:         tc,
		remembered: make(map[string]string),
	}
}

// RegisterSteps registers all step definitions
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		return ctx, seed.Reset(ctx, s.tc.Stores)
	})

	// Background steps
	sc.Step(`^an artrights server is running$`, s.anArtrightsServerIsRunning)
	sc.Step(`^the demo fixtures are loaded$`, s.theDemoFixturesAreLoaded)
	sc.Step(`^I am acting as "([^"]*)"$`, s.iAmActingAs)

	// Request steps
	sc.Step(`^I send a (GET|POST|PUT|PATCH|DELETE) request to "([^"]*)"$`, s.iSendARequestTo)
	sc.Step(`^I send a (POST|PUT|PATCH) request to "([^"]*)" with:$`, s.iSendARequestWithBody)
	sc.Step(`^I remember "([^"]*)" as "([^"]*)"$`, s.iRememberAs)

	// Response steps
	sc.Step(`^the response status should be (\d+)$`, s.theResponseStatusShouldBe)
	sc.Step(`^the response "([^"]*)" should be "([^"]*)"$`, s.theResponseFieldShouldBe)
	sc.Step(`^the response "([^"]*)" should be (-?\d+(?:\.\d+)?)$`, s.theResponseNumberShouldBe)
	sc.Step(`^the response "([^"]*)" should have (\d+) items?$`, s.theResponseFieldShouldHaveItems)

	s.registerRightsSteps(sc)
}

// Background steps

func (s *StepsContext) anArtrightsServerIsRunning() error {
	// Server is already running via TestContext
	return nil
}

func (s *StepsContext) theDemoFixturesAreLoaded(ctx context.Context) error {
	fixtures, err := seed.Demo()
	if err != nil {
		return err
	}
	_, err = fixtures.Apply(ctx, s.tc.Stores)
	return err
}

func (s *StepsContext) iAmActingAs(user string) error {
	s.user = user
	return nil
}

// Request steps

func (s *StepsContext) expand(path string) string {
	for name, value := range s.remembered {
		path = strings.ReplaceAll(path, "{"+name+"}", value)
	}
	return path
}

func (s *StepsContext) do(method, path string, body io.Reader) error {
	req, err := http.NewRequest(method, s.tc.ServerURL+s.expand(path), body)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.user != "" {
		req.Header.Set("X-Artrights-User", s.user)
	}

	s.response, err = s.tc.HTTPClient.Do(req)
	if err != nil {
		return err
	}

	s.responseBody, err = io.ReadAll(s.response.Body)
	_ = s.response.Body.Close()
	return err
}

func (s *StepsContext) iSendARequestTo(method, path string) error {
	return s.do(method, path, nil)
}

func (s *StepsContext) iSendARequestWithBody(method, path string, body *godog.DocString) error {
	return s.do(method, path, strings.NewReader(s.expand(body.Content)))
}

func (s *StepsContext) iRememberAs(field, name string) error {
	v, err := s.field(field)
	if err != nil {
		return err
	}
	s.remembered[name] = fmt.Sprint(v)
	return nil
}

// Response steps

func (s *StepsContext) theResponseStatusShouldBe(expectedStatus int) error {
	if s.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d: %s", expectedStatus, s.response.StatusCode, string(s.responseBody))
	}
	return nil
}

func (s *StepsContext) theResponseFieldShouldBe(field, expected string) error {
	v, err := s.field(field)
	if err != nil {
		return err
	}
	if actual := fmt.Sprint(v); actual != s.expand(expected) {
		return fmt.Errorf("expected %s to be %q, got %q", field, expected, actual)
	}
	return nil
}

func (s *StepsContext) theResponseNumberShouldBe(field string, expected float64) error {
	v, err := s.field(field)
	if err != nil {
		return err
	}
	n, ok := v.(float64)
	if !ok {
		return fmt.Errorf("expected %s to be a number, got %v", field, v)
	}
	if n != expected {
		return fmt.Errorf("expected %s to be %v, got %v", field, expected, n)
	}
	return nil
}

func (s *StepsContext) theResponseFieldShouldHaveItems(field string, count int) error {
	v, err := s.field(field)
	if err != nil {
		return err
	}
	items, ok := v.([]any)
	if !ok {
		if v == nil && count == 0 {
			return nil
		}
		return fmt.Errorf("expected %s to be a list, got %v", field, v)
	}
	if len(items) != count {
		return fmt.Errorf("expected %s to have %d items, got %d", field, count, len(items))
	}
	return nil
}

// field resolves a dotted path such as "data.media_rights.0.media_id" in
// the JSON response body. "." names the whole body.
func (s *StepsContext) field(path string) (any, error) {
	var v any
	if err := json.Unmarshal(s.responseBody, &v); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if path == "." {
		return v, nil
	}
	for _, segment := range strings.Split(path, ".") {
		switch node := v.(type) {
		case map[string]any:
			next, ok := node[segment]
			if !ok {
				return nil, fmt.Errorf("%s: no field %q in %s", path, segment, string(s.responseBody))
			}
			v = next
		case []any:
			i, err := strconv.Atoi(segment)
			if err != nil || i < 0 || i >= len(node) {
				return nil, fmt.Errorf("%s: bad index %q", path, segment)
			}
			v = node[i]
		default:
			return nil, fmt.Errorf("%s: cannot descend into %v", path, v)
		}
	}
	return v, nil
}
