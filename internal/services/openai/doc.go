// Package openai transcribes audio segments through the OpenAI audio API.
// The verbose JSON response carries per-segment log probabilities, which
// are folded into the confidence estimate the sync search gates on.
package openai
