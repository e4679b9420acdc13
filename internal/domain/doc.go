// Package domain defines the core entities of the wellness companion:
// the user profile and settings, the five companion personas, quiz
// questions and daily check-in records, the 30-day journey, chat
// messages, and the sleep plan. Entities are immutable snapshots;
// mutation happens by replacing the value and persisting it through
// the store layer.
package domain
