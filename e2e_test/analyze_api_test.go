//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tmeridew/edofunc/cmd"
	"github.com/tmeridew/edofunc/model"
)

func TestMain(m *testing.M) {
	cmd.LoadSystems()
	os.Exit(m.Run())
}

func createAnalyzeReqBody(body model.AnalyzeRequestBody) io.Reader {
	data, err := json.Marshal(body)
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func TestMajorTriadAnalyzeE2E(t *testing.T) {
	body := createAnalyzeReqBody(model.AnalyzeRequestBody{
		System:        12,
		Root:          0,
		PitchClasses:  []int{0, 4, 7},
		NotationStyle: "full",
	})
	req := httptest.NewRequest(http.MethodPost, "/analyze", body)
	w := httptest.NewRecorder()
	cmd.HandleAnalyze(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var analyzeResponse model.AnalyzeResponse
	err := json.Unmarshal(respBody, &analyzeResponse)
	if err != nil {
		panic(err.Error())
	}

	assert.True(analyzeResponse.Matched)
	assert.Equal("Major", analyzeResponse.ChordName)
	assert.Equal("C", analyzeResponse.RootName)
	assert.Equal(model.FunctionTonic, analyzeResponse.Function)
	assert.False(analyzeResponse.IsDominant)
}

func TestUnknownSystemE2E(t *testing.T) {
	body := createAnalyzeReqBody(model.AnalyzeRequestBody{
		System:       19,
		PitchClasses: []int{0, 4, 7},
	})
	req := httptest.NewRequest(http.MethodPost, "/analyze", body)
	w := httptest.NewRecorder()
	cmd.HandleAnalyze(w, req)

	assert.Equal(t, w.Result().StatusCode, 404)
}

func TestMissingStyleE2E(t *testing.T) {
	body := createAnalyzeReqBody(model.AnalyzeRequestBody{
		System:        17,
		Root:          0,
		PitchClasses:  []int{0, 4, 8},
		NotationStyle: "abbreviated",
	})
	req := httptest.NewRequest(http.MethodPost, "/analyze", body)
	w := httptest.NewRecorder()
	cmd.HandleAnalyze(w, req)

	assert.Equal(t, w.Result().StatusCode, 400)
}

func TestListSystemsE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/systems", nil)
	w := httptest.NewRecorder()
	cmd.HandleSystems(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var overviews []model.SystemOverview
	err := json.Unmarshal(respBody, &overviews)
	if err != nil {
		panic(err.Error())
	}

	assert.Len(overviews, 4)
	assert.Equal(12, overviews[0].System)
	assert.Equal(7, overviews[0].PerfectFifth)
}
