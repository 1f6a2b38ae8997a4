package ai

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"sellerpulse/pkg/global"
)

const generationTimeout = 60 * time.Second

var (
	initOnce      sync.Once
	client        *openai.Client
	modelName     string
	isInitialized bool
)

// initClient builds the Groq-backed OpenAI client exactly once, on first
// use. The model identity is fixed here for the process lifetime; it is not
// a per-request parameter.
func initClient() {
	apiKey := os.Getenv("GROQ_API_KEY")
	if apiKey == "" {
		log.Println("AI service disabled - GROQ_API_KEY not provided")
		return
	}

	baseURL := global.GetEnvOrDefault("GROQ_BASE_URL", "https://api.groq.com/openai/v1")
	modelName = global.GetEnvOrDefault("GROQ_MODEL", "gemma2-9b-it")

	clientValue := openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
	)
	client = &clientValue

	isInitialized = true
	log.Printf("AI service initialized with Groq model %s", modelName)
}

// IsEnabled reports whether the AI service is configured, initializing the
// client lazily on first call.
func IsEnabled() bool {
	initOnce.Do(initClient)
	return isInitialized && client != nil
}

// Generator wraps a single remote text-completion call. Tests inject a stub
// that counts calls and returns canned text.
type Generator interface {
	GenerateCompletion(ctx context.Context, prompt string, temperature float64) (string, error)
}

type groqGenerator struct{}

// DefaultGenerator returns the Generator backed by the process-wide Groq
// client. Safe for concurrent use; holds no per-request state.
func DefaultGenerator() Generator {
	return groqGenerator{}
}

func (groqGenerator) GenerateCompletion(ctx context.Context, prompt string, temperature float64) (string, error) {
	if !IsEnabled() {
		return "", ErrNotConfigured
	}

	// Out-of-range temperatures are clamped rather than rejected.
	if temperature < 0 {
		temperature = 0
	} else if temperature > 1 {
		temperature = 1
	}

	ctx, cancel := context.WithTimeout(ctx, generationTimeout)
	defer cancel()

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(modelName),
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(prompt),
					},
				},
			},
		},
		MaxTokens:   openai.Int(1024),
		Temperature: openai.Float(temperature),
	})

	if err != nil {
		return "", &GenerationError{Message: "failed to generate AI response", Cause: err}
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &GenerationError{Message: "AI returned empty response"}
	}

	return resp.Choices[0].Message.Content, nil
}
