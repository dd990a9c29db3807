package cmd

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tmeridew/edofunc/constants"
	"github.com/tmeridew/edofunc/model"
	"github.com/tmeridew/edofunc/util"
)

var logger *zap.Logger

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the analysis API over HTTP",
	Long:  `Serves the analysis API over HTTP`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrUnknownSystem):
		status = http.StatusNotFound
	case errors.Is(err, model.ErrInvalidPitchClass),
		errors.Is(err, model.ErrNamingSchemeNotFound),
		errors.Is(err, model.ErrConfig):
		status = http.StatusBadRequest
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

// HandleAnalyze is the POST /analyze handler. Exported for the e2e suite.
func HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var input model.AnalyzeRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Could not decode request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	res, err := analyzer.Analyze(input.System, input.Root, input.PitchClasses,
		input.NotationStyle, input.NamingScheme)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := model.AnalyzeResponse{
		System:      res.System,
		Root:        res.Root,
		RootName:    res.RootName,
		MemberNames: res.MemberNames,
		Matched:     res.Chord.Matched,
		ChordNames:  res.Chord.Names,
		Intervals:   res.Chord.Intervals,
		Tendencies:  res.Tendencies,
		IsDominant:  res.IsDominant,
		Function:    res.Function,
	}
	if res.Chord.Matched && input.NotationStyle != "" {
		// Analyze already verified the style exists.
		resp.ChordName, _ = res.Chord.Name(input.NotationStyle)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// HandleSystems is the GET /systems handler.
func HandleSystems(w http.ResponseWriter, r *http.Request) {
	overviews := make([]model.SystemOverview, 0)
	for _, id := range analyzer.Registry().Systems() {
		sys, err := analyzer.Registry().Get(id)
		if err != nil {
			writeError(w, err)
			return
		}
		overviews = append(overviews, overview(sys))
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(overviews)
}

// HandleSystem is the GET /systems/{id} handler.
func HandleSystem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "System ID must be an integer", http.StatusBadRequest)
		return
	}
	sys, err := analyzer.Registry().Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(overview(sys))
}

func overview(sys *model.TuningSystem) model.SystemOverview {
	styles := make(map[string]bool)
	for _, t := range sys.Templates {
		for style := range t.Names {
			styles[style] = true
		}
	}
	return model.SystemOverview{
		System:         sys.Steps,
		Steps:          sys.Steps,
		Templates:      len(sys.Templates),
		NotationStyles: util.SortedKeys(styles),
		NamingSchemes:  util.SortedKeys(sys.NoteNames),
		CurrentScheme:  sys.CurrentNoteNames,
		PerfectFifth:   sys.PerfectFifth,
	}
}

// requestLogger tags every request with a request ID and logs it.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-Id", id)
		logger.Info("request",
			zap.String("request_id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path))
		next.ServeHTTP(w, r)
	})
}

func serve() error {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/analyze", HandleAnalyze).Methods("POST")
	router.HandleFunc("/systems", HandleSystems).Methods("GET")
	router.HandleFunc("/systems/{id}", HandleSystem).Methods("GET")

	handler := cors.Default().Handler(requestLogger(router))
	addr := ":" + constants.GetPort()
	logger.Info("serving", zap.String("addr", addr))
	return http.ListenAndServe(addr, handler)
}
