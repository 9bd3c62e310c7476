package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"whatbeats/models"

	openai "github.com/sashabaranov/go-openai"
)

// arbiterSystemPrompt is the fixed instruction for the judging oracle. The
// oracle must answer with JSON matching verdictSchema and nothing else.
const arbiterSystemPrompt = `You are the arbiter for the "what beats this thing" game.
requirements:
- You will be given a current_subject, e.g., "rock".
- You will be given a user_guess, e.g., "paper".
- set user_guess to a normalized, singular version of the user_guess.
- beats means user_guess beats current_subject.
- Consider common-sense, physical, or widely known facts e.g. paper beats rock, water beats computer, fire beats paper, hammer can break computer.
- if user_guess considers beats current_subject, set beats to true.
- If the guess is nonsense, say it does not beat.
- Reject quantity-based guesses, e.g., "a lot of X", "many X", "two X".
- Keep "reason" to one short sentence why user_guess beats current_subject.
- Make sure the beats value correlate with the reason you provide if user_guess beats current_subject provide why and if not provide why not.
- Do not allow current_subject and user_guess to be the same thing.
- Do not provide contradictory or ambiguous answers beats value and reason should go together.
- Always respond with a valid JSON matching the schema below.
- Pick an emoji that best represents the main noun of the phrase.
- If no suitable emoji exists, use a relevant generic emoji like ❓
- If you think this is a repeat guess, set is_repeat_guess to true, otherwise false and set reason to "{user_guess} is a repeat guess".
- Never invent extra fields. No narration.
- Output ONLY valid JSON that matches the provided JSON schema.
JSON schema:
{
    "beats": boolean,
    "user_guess": string,
    "reason": string,
    "user_guess_emoji": emoji_character,
    "is_repeat_guess": boolean
}`

var verdictSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"user_guess": {
			"type": "string",
			"description": "The user's guess for what might beat the current subject."
		},
		"beats": {
			"type": "boolean",
			"description": "Whether the user_guess beats the current_subject."
		},
		"reason": {
			"type": "string",
			"description": "Short justification for the outcome."
		},
		"user_guess_emoji": {
			"type": "string",
			"description": "An emoji that represents the user_guess, e.g., 🪨 for rock, 📄 for paper, ✂️ for scissors."
		},
		"is_repeat_guess": {
			"type": "boolean",
			"description": "Whether the user_guess has already been used in this game."
		}
	},
	"required": ["user_guess", "beats", "reason", "user_guess_emoji", "is_repeat_guess"],
	"additionalProperties": false
}`)

// ArbiterService translates between the game's domain and the oracle's wire
// contract. It has no side effects beyond the outbound call.
type ArbiterService struct {
	client *openai.Client
	model  string
}

func NewArbiterService(client *openai.Client, model string) *ArbiterService {
	return &ArbiterService{
		client: client,
		model:  model,
	}
}

func (s *ArbiterService) Judge(ctx context.Context, guess, subject string, history []models.ConversationTurn) (*models.Verdict, error) {
	if guess == "" {
		return nil, fmt.Errorf("%w: guess must be a non-empty string", ErrSchema)
	}
	if subject == "" {
		return nil, fmt.Errorf("%w: subject must be a non-empty string", ErrSchema)
	}
	if err := validateHistory(history); err != nil {
		return nil, err
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: arbiterSystemPrompt,
	})
	for _, turn := range history {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    turn.Role,
			Content: flattenTurn(turn),
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: frameQuestion(subject, guess),
	})

	start := time.Now()
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    s.model,
		Messages: messages,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "whatbeatsthis",
				Schema: verdictSchema,
				Strict: true,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOracle, err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("%w: oracle returned no message", ErrOracle)
	}

	verdict, err := parseVerdict(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	log.Printf("Oracle judged %q vs %q in %v: beats=%t", guess, subject, time.Since(start), verdict.Beats)
	return verdict, nil
}

// HistoryEntry renders the two turns the caller appends to a room's history
// when a verdict is accepted: the framed question and the oracle's answer
// re-serialized as JSON.
func (s *ArbiterService) HistoryEntry(subject, guess string, verdict *models.Verdict) []models.ConversationTurn {
	payload, _ := json.Marshal(verdict)
	return []models.ConversationTurn{
		{
			Role: models.RoleUser,
			Content: []models.ContentFragment{
				{Type: models.FragmentInputText, Text: frameQuestion(subject, guess)},
			},
		},
		{
			Role: models.RoleAssistant,
			Content: []models.ContentFragment{
				{Type: models.FragmentOutputText, Text: string(payload)},
			},
		},
	}
}

func frameQuestion(subject, guess string) string {
	return fmt.Sprintf("current_subject: %s, user_guess: %s", subject, guess)
}

func flattenTurn(turn models.ConversationTurn) string {
	texts := make([]string, 0, len(turn.Content))
	for _, fragment := range turn.Content {
		texts = append(texts, fragment.Text)
	}
	return strings.Join(texts, "\n")
}

func validateHistory(history []models.ConversationTurn) error {
	for i, turn := range history {
		if turn.Role != models.RoleUser && turn.Role != models.RoleAssistant {
			return fmt.Errorf("%w: history entry %d has invalid role %q", ErrSchema, i, turn.Role)
		}
		if len(turn.Content) == 0 {
			return fmt.Errorf("%w: history entry %d has no content", ErrSchema, i)
		}
		for _, fragment := range turn.Content {
			if fragment.Type != models.FragmentInputText && fragment.Type != models.FragmentOutputText {
				return fmt.Errorf("%w: history entry %d has invalid fragment type %q", ErrSchema, i, fragment.Type)
			}
		}
	}
	return nil
}

// parseVerdict enforces the verdict schema: every required field must be
// present, not merely zero-valued.
func parseVerdict(content string) (*models.Verdict, error) {
	var raw struct {
		UserGuess      *string `json:"user_guess"`
		Beats          *bool   `json:"beats"`
		Reason         *string `json:"reason"`
		UserGuessEmoji *string `json:"user_guess_emoji"`
		IsRepeatGuess  *bool   `json:"is_repeat_guess"`
	}
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("%w: oracle answer is not valid JSON: %v", ErrOracle, err)
	}

	missing := ""
	switch {
	case raw.UserGuess == nil:
		missing = "user_guess"
	case raw.Beats == nil:
		missing = "beats"
	case raw.Reason == nil:
		missing = "reason"
	case raw.UserGuessEmoji == nil:
		missing = "user_guess_emoji"
	case raw.IsRepeatGuess == nil:
		missing = "is_repeat_guess"
	}
	if missing != "" {
		return nil, fmt.Errorf("%w: oracle answer is missing field %q", ErrOracle, missing)
	}

	return &models.Verdict{
		UserGuess:      *raw.UserGuess,
		Beats:          *raw.Beats,
		Reason:         *raw.Reason,
		UserGuessEmoji: *raw.UserGuessEmoji,
		IsRepeatGuess:  *raw.IsRepeatGuess,
	}, nil
}
