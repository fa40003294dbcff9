package services

// Services defined in this package:
// - AuthService: Handles authentication, registration and profiles
// - ClassService: Handles classes, join codes and rosters
// - PlacementService: Handles the placement test and leveling
// - LessonService: Handles lesson content and authoring
// - ProgressService: Handles lesson sessions, scoring and the leaderboard
// - SubscriptionService: Handles the paywall and subscription tiers
// - AssignmentService: Handles assignments and submissions
// - AdminService: Handles platform administration
