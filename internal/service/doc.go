// Package service contains the application's use cases: identity
// hydration, the companion conversation, daily and matching quizzes, the
// 30-day marathon, sleep planning, and challenges.
//
// Services orchestrate the domain model, the derive package, the catalog,
// and the persistent store. They own the rules the stores do not: when
// experience is awarded, what happens on a repeated check-in, and how the
// remote AI degrades to the local phrase bank.
package service
