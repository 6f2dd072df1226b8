package services

// VideoRef is one curated tutorial entry. Catalog sequences are ordered,
// conceptually one entry per plan day.
type VideoRef struct {
	VideoID     string
	Title       string
	Description string
}

// videoCatalog maps normalized hobby -> skill level -> curated sequence.
// Entries are pre-vetted by hand; nothing here is fetched at runtime.
var videoCatalog = map[string]map[string][]VideoRef{
	"guitar": {
		"beginner": {
			{VideoID: "F5bbIpZFXyY", Title: "Guitar Anatomy and How to Hold It", Description: "Parts of the guitar, posture, and tuning basics"},
			{VideoID: "w4a2ge9N31E", Title: "Your First Three Chords", Description: "E minor, A major, and D major with clean transitions"},
			{VideoID: "kXu1hNLzADU", Title: "Strumming Patterns That Actually Sound Good", Description: "Down-up patterns and keeping time"},
			{VideoID: "vpBXzv4drCo", Title: "Switching Chords Without Pausing", Description: "Drills for smooth chord changes"},
			{VideoID: "8EpTnWJZ6R8", Title: "Play Your First Full Song", Description: "A two-chord song from start to finish"},
			{VideoID: "zt6CJZ8XfDM", Title: "Basic Fingerpicking", Description: "Thumb and finger independence on open strings"},
			{VideoID: "nyuz9lQKu9M", Title: "Putting It All Together", Description: "A practice routine you can keep after day seven"},
		},
		"some": {
			{VideoID: "ZgPfbvI2nQw", Title: "Barre Chord Fundamentals", Description: "F major without the buzz"},
			{VideoID: "5Jb6IgkJwsA", Title: "Reading Chord Charts and Tabs", Description: "Turning notation into playing"},
			{VideoID: "pvM7t9nSHs0", Title: "Rhythm Guitar Workout", Description: "Muting, accents, and groove"},
			{VideoID: "gbPcWHvbbMo", Title: "Intro to the Pentatonic Scale", Description: "The box shape and first licks"},
		},
		"intermediate": {
			{VideoID: "yCXsALlVqGY", Title: "CAGED System Explained", Description: "Mapping the fretboard with five shapes"},
			{VideoID: "QjGrWnJ0Sp8", Title: "Improvising Over a Backing Track", Description: "Phrasing, bends, and vibrato"},
			{VideoID: "uZ1DT3kGpbE", Title: "Writing Your Own Riffs", Description: "From scale patterns to musical ideas"},
		},
	},
	"piano": {
		"beginner": {
			{VideoID: "4SXQ_wlbWog", Title: "Sitting at the Piano for the First Time", Description: "Hand position, finger numbers, and middle C"},
			{VideoID: "QBH6IpRkVDs", Title: "Five-Finger Scales", Description: "C position for both hands"},
			{VideoID: "8CXnpSJy0WE", Title: "Your First Chords", Description: "C, F, and G triads"},
			{VideoID: "nZMXQPK6dOQ", Title: "Hands Together", Description: "Coordinating melody and accompaniment"},
			{VideoID: "PY9Fo9YK-9w", Title: "Reading Treble Clef", Description: "Notes on the staff without guessing"},
			{VideoID: "HsRVkZ8R00U", Title: "A Simple Song, Both Hands", Description: "Play a complete piece slowly"},
			{VideoID: "vph5E1fJEtY", Title: "Building a Daily Practice Habit", Description: "A 20-minute routine that sticks"},
		},
	},
	"cooking": {
		"beginner": {
			{VideoID: "ZJy1ajvMU1k", Title: "Knife Skills 101", Description: "Grip, the claw, and basic cuts"},
			{VideoID: "VjINuQX4hbM", Title: "Heat Control and Pan Basics", Description: "Why food sticks and how to stop it"},
			{VideoID: "nP0P3zXbQnE", Title: "Seasoning: Salt, Fat, Acid", Description: "Tasting and adjusting as you go"},
			{VideoID: "pJ3bw6Sz3to", Title: "Perfect Eggs Three Ways", Description: "Scrambled, fried, and an omelette"},
			{VideoID: "ZsR-nXMS8Hk", Title: "One-Pan Weeknight Dinner", Description: "A complete meal with minimal cleanup"},
			{VideoID: "nDt7Nwr0Fvc", Title: "Pasta from Package to Plate", Description: "Sauce emulsification and timing"},
			{VideoID: "CSsu2rq7W0Y", Title: "Cook a Full Meal for Someone", Description: "Planning, prep, and plating"},
		},
		"some": {
			{VideoID: "2ZSoUGFcLbY", Title: "Stocks and Pan Sauces", Description: "Deglazing and reduction"},
			{VideoID: "bJUiWdM__Qw", Title: "Braising and Low-Slow Cooking", Description: "Tough cuts made tender"},
			{VideoID: "Xa3xa1wrvQc", Title: "Balancing a Dish", Description: "Fixing bland, salty, or flat food"},
		},
	},
	"painting": {
		"beginner": {
			{VideoID: "ZDGiRbjdAzk", Title: "Materials You Actually Need", Description: "Brushes, paints, and surfaces on a budget"},
			{VideoID: "tQ3EcbTTWlI", Title: "Color Mixing Basics", Description: "Primary colors and avoiding mud"},
			{VideoID: "lHfkJMzQZ9w", Title: "Brush Control Exercises", Description: "Lines, washes, and dry brush"},
			{VideoID: "wQx7dkkq-qU", Title: "Simple Landscape, Step by Step", Description: "Sky, ground, and a focal point"},
			{VideoID: "nxvXMWs01pE", Title: "Light and Shadow", Description: "Making flat shapes look solid"},
			{VideoID: "cVqZC3vtkQs", Title: "Painting From a Photo", Description: "Simplifying a reference"},
			{VideoID: "sqqmXGCwtlk", Title: "Finish and Review a Full Piece", Description: "Final details and self-critique"},
		},
	},
	"drawing": {
		"beginner": {
			{VideoID: "wgDNDOKnArk", Title: "Lines, Shapes, and Warmups", Description: "Control exercises before anything else"},
			{VideoID: "pMC0Cx3Uk84", Title: "Seeing Like an Artist", Description: "Drawing what you see, not what you know"},
			{VideoID: "3LCx3jQMDiA", Title: "Basic Perspective", Description: "One-point perspective without a ruler"},
			{VideoID: "ewMksAbgdBI", Title: "Shading Techniques", Description: "Hatching, blending, and value scales"},
			{VideoID: "Gg-MPtQ6cOE", Title: "Drawing Simple Objects", Description: "A mug, an apple, and a book"},
			{VideoID: "hWCsirPQyCU", Title: "Proportions and Measuring", Description: "Using your pencil as a ruler"},
			{VideoID: "1jKobmXG9uo", Title: "A Finished Still Life", Description: "Composition to final shading"},
		},
	},
	"photography": {
		"beginner": {
			{VideoID: "V7z7BAZdt2M", Title: "Camera Settings Demystified", Description: "Aperture, shutter speed, and ISO"},
			{VideoID: "LxO-6rlihSg", Title: "Composition Rules That Work", Description: "Rule of thirds, leading lines, framing"},
			{VideoID: "8T94sdfWGSA", Title: "Working With Natural Light", Description: "Golden hour and window light"},
			{VideoID: "q9WbMXDZM0U", Title: "Focus and Depth of Field", Description: "Sharp subjects, soft backgrounds"},
			{VideoID: "P2gDiRx7zWc", Title: "A Photo Walk Assignment", Description: "Ten deliberate frames, not a hundred snaps"},
			{VideoID: "ln6ZGvfsBvM", Title: "Basic Editing", Description: "Exposure, crop, and color in any editor"},
			{VideoID: "7ZVyNjKSr0M", Title: "Build a Seven-Day Mini Portfolio", Description: "Select, sequence, and share"},
		},
	},
	"yoga": {
		"beginner": {
			{VideoID: "v7AYKMP6rOE", Title: "Yoga for Complete Beginners", Description: "Breath, alignment, and foundational poses"},
			{VideoID: "149Iac5fmoE", Title: "Sun Salutations Slowly", Description: "The sequence broken down pose by pose"},
			{VideoID: "4vTJHUDB5ak", Title: "Standing Poses and Balance", Description: "Warrior poses and tree pose"},
			{VideoID: "GLy2rYHwUqY", Title: "Hips and Hamstrings", Description: "Gentle opening for stiff bodies"},
			{VideoID: "oX6I6vs1EFs", Title: "Core and Strength", Description: "Supporting your practice safely"},
			{VideoID: "Eml2xnoLpYE", Title: "Restorative Evening Flow", Description: "Winding down and breathwork"},
			{VideoID: "b1H3xO3x_Js", Title: "A Complete 30-Minute Practice", Description: "Flowing through everything you learned"},
		},
	},
	"chess": {
		"beginner": {
			{VideoID: "OCSbzArwB10", Title: "How the Pieces Move", Description: "Rules, board setup, and notation"},
			{VideoID: "21L45Qo6EIY", Title: "Opening Principles", Description: "Center, development, king safety"},
			{VideoID: "NAIQyoPcjNM", Title: "Basic Tactics: Forks and Pins", Description: "Spotting free material"},
			{VideoID: "Ao9iOeK_jvU", Title: "Checkmate Patterns", Description: "Back rank, ladder mate, and more"},
			{VideoID: "xz2Xd9HJP_s", Title: "Endgame Essentials", Description: "King and pawn endings"},
			{VideoID: "R1yYwy9Yz9w", Title: "Analyzing Your Own Games", Description: "Finding the move you missed"},
			{VideoID: "QlNVc-5IEIs", Title: "Play and Review a Full Game", Description: "Applying the week in one game"},
		},
	},
	"knitting": {
		"beginner": {
			{VideoID: "p_R1UDsNOMk", Title: "Casting On", Description: "Long-tail cast on for beginners"},
			{VideoID: "Wm3B9nU1S7A", Title: "The Knit Stitch", Description: "Your first rows of garter stitch"},
			{VideoID: "pmU1n1kvRMQ", Title: "The Purl Stitch", Description: "Stockinette and ribbing"},
			{VideoID: "8v1MVPccZdM", Title: "Fixing Mistakes", Description: "Dropped stitches without panic"},
			{VideoID: "3nvXJ8xnzOE", Title: "Binding Off", Description: "Finishing an edge cleanly"},
			{VideoID: "HMZEcH-dyq0", Title: "Reading a Simple Pattern", Description: "Abbreviations and gauge"},
			{VideoID: "0xMkRWCfYBY", Title: "Finish Your First Scarf", Description: "Weaving in ends and blocking"},
		},
	},
	"gardening": {
		"beginner": {
			{VideoID: "5rlt0Ic2Ldo", Title: "Planning Your First Garden", Description: "Light, space, and what to grow"},
			{VideoID: "Ul1tJMK0B0s", Title: "Soil and Containers", Description: "Potting mix, drainage, and beds"},
			{VideoID: "9Lo8p3rPkV8", Title: "Sowing Seeds", Description: "Depth, spacing, and watering in"},
			{VideoID: "bqBDkU6aFeg", Title: "Watering Without Guesswork", Description: "How much and how often"},
			{VideoID: "K4JhV1Wm8Ro", Title: "Feeding and Mulching", Description: "Keeping plants growing strong"},
			{VideoID: "0h9mLOrNKkM", Title: "Pests and Problems", Description: "Spotting trouble early"},
			{VideoID: "Z0i0tOrI2rU", Title: "A Weekly Care Routine", Description: "Ten minutes a day keeps it alive"},
		},
	},
}

// genericVideoTitles is the hobby-agnostic placeholder track, one title per
// day, with the hobby name substituted via fmt.Sprintf.
var genericVideoTitles = []string{
	"Getting Started with %s",
	"%s Fundamentals",
	"Practicing %s Effectively",
	"Common %s Beginner Mistakes",
	"Building a %s Routine",
	"Intermediate %s Techniques",
	"Your %s Journey Continues",
}

// fallbackVideo is returned when the hobby is entirely unknown.
var fallbackVideo = VideoRef{
	VideoID:     "ukzFI9rgwfU",
	Title:       "How to Learn Anything in 7 Days",
	Description: "A general framework for rapid skill acquisition",
}
