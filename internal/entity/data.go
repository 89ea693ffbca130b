// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package entity

// capitals maps lowercase country names to their capital cities. Used by the
// capital-city rule to build a verifiable search query.
var capitals = map[string]string{
	"afghanistan":    "Kabul",
	"argentina":      "Buenos Aires",
	"australia":      "Canberra",
	"bangladesh":     "Dhaka",
	"brazil":         "Brasilia",
	"canada":         "Ottawa",
	"china":          "Beijing",
	"egypt":          "Cairo",
	"france":         "Paris",
	"germany":        "Berlin",
	"india":          "New Delhi",
	"indonesia":      "Jakarta",
	"iran":           "Tehran",
	"italy":          "Rome",
	"japan":          "Tokyo",
	"mexico":         "Mexico City",
	"nepal":          "Kathmandu",
	"netherlands":    "Amsterdam",
	"pakistan":       "Islamabad",
	"russia":         "Moscow",
	"saudi arabia":   "Riyadh",
	"south africa":   "Pretoria",
	"south korea":    "Seoul",
	"spain":          "Madrid",
	"sri lanka":      "Sri Jayawardenepura Kotte",
	"switzerland":    "Bern",
	"thailand":       "Bangkok",
	"turkey":         "Ankara",
	"ukraine":        "Kyiv",
	"united kingdom": "London",
	"united states":  "Washington, D.C.",
	"vietnam":        "Hanoi",
}

// affirmationWords mark a question as seeking confirmation of a claim
// ("...is this right?"). Bilingual English / Romanized Hindi, matched as
// whole words against the lowercased question.
var affirmationWords = []string{
	"right", "correct", "true", "sahi", "theek",
}

// relationshipWords are the relations the personal-relationship patterns
// recognize, English and Romanized Hindi.
var relationshipWords = []string{
	"friend", "dost", "brother", "bhai", "sister", "behen", "didi",
	"mother", "maa", "mummy", "father", "papa", "pita",
	"wife", "biwi", "patni", "husband", "pati",
	"girlfriend", "boyfriend", "cousin", "uncle", "chacha", "mama",
	"aunt", "chachi", "mami", "son", "beta", "daughter", "beti",
}

// characteristicWords are personal attributes the characteristic patterns
// recognize.
var characteristicWords = []string{
	"age", "umar", "height", "lambai", "weight", "wajan",
	"name", "naam", "birthday", "janamdin", "salary", "job", "naukri",
	"school", "college", "city", "shehar",
}
