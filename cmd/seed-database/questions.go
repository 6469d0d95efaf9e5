package main

import (
	quizmodels "github.com/architect/medquiz/internal/quiz/models"
)

// sampleQuestions is the demo bank. The une_priority subset mirrors the
// curated licensing-exam questions served to locked accounts; the rest
// only become reachable once the full bank is unlocked.
func sampleQuestions() []*quizmodels.Question {
	return []*quizmodels.Question{
		// Respiratory
		{
			ID:            "resp-001",
			Question:      "A 65-year-old man with a 40-pack-year smoking history presents with worsening dyspnea and a chronic cough. Pulmonary function tests show a decreased FEV1/FVC ratio, increased total lung capacity, and decreased diffusing capacity. Which of the following is the most likely diagnosis?",
			Options:       quizmodels.OptionList{"Asthma", "Chronic bronchitis", "Emphysema", "Bronchiectasis", "Interstitial lung disease"},
			CorrectAnswer: 2,
			Explanation:   "The presentation and pulmonary function tests are classic for emphysema: decreased FEV1/FVC ratio indicating obstruction, increased total lung capacity indicating hyperinflation, and decreased diffusing capacity from destruction of alveolar walls.",
			Category:      "respiratory",
			Subcategory:   "obstructive-disease",
			Year:          2,
			Difficulty:    2,
			Source:        quizmodels.SourceUNEPriority,
			Verified:      true,
		},
		{
			ID:            "resp-002",
			Question:      "A 28-year-old woman presents to the emergency department with sudden onset of dyspnea and right-sided pleuritic chest pain. She recently returned from a long international flight. Her vital signs show tachycardia and mild hypoxemia. What is the most appropriate initial diagnostic test?",
			Options:       quizmodels.OptionList{"Chest X-ray", "CT pulmonary angiography", "D-dimer", "Ventilation-perfusion scan", "Arterial blood gas"},
			CorrectAnswer: 2,
			Explanation:   "With clinical suspicion for pulmonary embolism after recent travel, D-dimer is the appropriate initial test. A negative D-dimer rules out PE in low-risk patients; if positive, proceed to CT pulmonary angiography.",
			Category:      "respiratory",
			Subcategory:   "vascular",
			Year:          3,
			Difficulty:    2,
			Source:        quizmodels.SourceUNEPriority,
			Verified:      true,
		},
		// Cardiology
		{
			ID:            "cardio-001",
			Question:      "A 55-year-old woman presents with crushing substernal chest pain that radiates to her left arm. ECG shows ST-segment elevation in leads II, III, and aVF. Which coronary artery is most likely occluded?",
			Options:       quizmodels.OptionList{"Left anterior descending artery", "Left circumflex artery", "Right coronary artery", "Left main coronary artery", "Posterior descending artery"},
			CorrectAnswer: 2,
			Explanation:   "ST-segment elevation in leads II, III, and aVF indicates an inferior wall myocardial infarction. The right coronary artery supplies the inferior wall of the left ventricle in roughly 85% of people.",
			Category:      "cardiology",
			Subcategory:   "ischemic-disease",
			Year:          3,
			Difficulty:    3,
			Source:        quizmodels.SourceUNEPriority,
			Verified:      true,
		},
		{
			ID:            "cardio-002",
			Question:      "A 45-year-old man with hypertension presents for a routine check-up. His blood pressure is 145/95 mmHg. Which of the following is the most appropriate first-line antihypertensive medication for this patient without other comorbidities?",
			Options:       quizmodels.OptionList{"Thiazide diuretic", "Beta-blocker", "Calcium channel blocker", "Alpha-blocker", "ACE inhibitor"},
			CorrectAnswer: 0,
			Explanation:   "Thiazide diuretics are recommended as first-line therapy for uncomplicated hypertension. They reduce cardiovascular events and are cost-effective.",
			Category:      "cardiology",
			Subcategory:   "hypertension",
			Year:          2,
			Difficulty:    1,
			Source:        quizmodels.SourceUNEPriority,
			Verified:      true,
		},
		// Neurology
		{
			ID:            "neuro-001",
			Question:      "A 45-year-old man with chronic alcohol use presents with confusion, ataxia, and nystagmus. Which vitamin deficiency is most likely responsible?",
			Options:       quizmodels.OptionList{"Vitamin B1 (Thiamine)", "Vitamin B12", "Vitamin C", "Vitamin D", "Folate"},
			CorrectAnswer: 0,
			Explanation:   "Wernicke's encephalopathy, the triad of confusion, ataxia, and nystagmus, is caused by thiamine deficiency, commonly seen in chronic alcohol use.",
			Category:      "neurology",
			Subcategory:   "nutritional",
			Year:          2,
			Difficulty:    2,
			Source:        quizmodels.SourceUNEPriority,
			Verified:      true,
		},
		{
			ID:            "neuro-002",
			Question:      "A 72-year-old woman presents with sudden onset of right-sided weakness and inability to speak. CT scan of the head shows no hemorrhage. What is the time window for administering tissue plasminogen activator (tPA)?",
			Options:       quizmodels.OptionList{"1.5 hours", "3 hours", "4.5 hours", "6 hours", "12 hours"},
			CorrectAnswer: 2,
			Explanation:   "The guideline for tPA in acute ischemic stroke is within 4.5 hours of symptom onset, the window where benefit outweighs the risk of hemorrhagic transformation.",
			Category:      "neurology",
			Subcategory:   "stroke",
			Year:          3,
			Difficulty:    2,
			Source:        quizmodels.SourceUNEPriority,
			Verified:      true,
		},
		// Endocrinology
		{
			ID:            "endo-001",
			Question:      "A 30-year-old woman presents with headache, palpitations, and sweating episodes. Physical examination reveals a blood pressure of 180/110 mmHg. Which of the following is the most likely diagnosis?",
			Options:       quizmodels.OptionList{"Pheochromocytoma", "Cushing syndrome", "Hyperaldosteronism", "Hyperthyroidism", "Essential hypertension"},
			CorrectAnswer: 0,
			Explanation:   "The triad of headaches, palpitations, and sweating in a hypertensive patient is characteristic of pheochromocytoma. Intermittent catecholamine secretion causes the paroxysmal symptoms.",
			Category:      "endocrinology",
			Subcategory:   "adrenal",
			Year:          3,
			Difficulty:    3,
			Source:        quizmodels.SourceSample,
			Verified:      true,
		},
		{
			ID:            "endo-002",
			Question:      "A 35-year-old woman presents with fatigue, weight gain, and cold intolerance. Laboratory tests show elevated TSH and low free T4. What is the most likely diagnosis?",
			Options:       quizmodels.OptionList{"Hyperthyroidism", "Primary hypothyroidism", "Secondary hypothyroidism", "Subclinical hypothyroidism", "Sick euthyroid syndrome"},
			CorrectAnswer: 1,
			Explanation:   "Elevated TSH with low free T4 indicates primary hypothyroidism: the thyroid fails to produce adequate hormone and the pituitary compensates with increased TSH.",
			Category:      "endocrinology",
			Subcategory:   "thyroid",
			Year:          2,
			Difficulty:    1,
			Source:        quizmodels.SourceSample,
			Verified:      true,
		},
		// Urology
		{
			ID:            "uro-001",
			Question:      "A 60-year-old man presents with painless hematuria. Urine cytology shows atypical cells. Which of the following is the most likely diagnosis?",
			Options:       quizmodels.OptionList{"Renal cell carcinoma", "Bladder cancer", "Prostate cancer", "Kidney stones", "Urinary tract infection"},
			CorrectAnswer: 1,
			Explanation:   "Painless hematuria in an older adult is a classic presentation of bladder cancer, and atypical cells on urine cytology support the diagnosis.",
			Category:      "urology",
			Subcategory:   "oncology",
			Year:          3,
			Difficulty:    2,
			Source:        quizmodels.SourceSample,
			Verified:      true,
		},
		{
			ID:            "uro-002",
			Question:      "A 25-year-old man presents with acute onset of severe left flank pain radiating to the groin with nausea. Urinalysis shows microscopic hematuria. What is the most likely diagnosis?",
			Options:       quizmodels.OptionList{"Pyelonephritis", "Renal cell carcinoma", "Nephrolithiasis", "Urinary tract infection", "Renal infarction"},
			CorrectAnswer: 2,
			Explanation:   "Acute flank pain radiating to the groin with hematuria is characteristic of nephrolithiasis. The pain pattern follows the path of ureteral obstruction.",
			Category:      "urology",
			Subcategory:   "stones",
			Year:          2,
			Difficulty:    1,
			Source:        quizmodels.SourceSample,
			Verified:      true,
		},
		// Pharmacology
		{
			ID:            "pharm-001",
			Question:      "A 68-year-old woman on warfarin for atrial fibrillation is started on trimethoprim-sulfamethoxazole for a urinary tract infection. Three days later her INR is 7.2 without bleeding. What is the mechanism of this interaction?",
			Options:       quizmodels.OptionList{"Displacement of warfarin from albumin", "Inhibition of CYP2C9 metabolism of warfarin", "Inhibition of vitamin K synthesis by gut flora", "Induction of CYP3A4", "Reduced renal clearance of warfarin"},
			CorrectAnswer: 1,
			Explanation:   "Sulfamethoxazole inhibits CYP2C9, the enzyme that metabolizes the more potent S-enantiomer of warfarin, raising INR. Gut flora suppression contributes but CYP2C9 inhibition is the dominant mechanism.",
			Category:      "pharmacology",
			Subcategory:   "drug-interactions",
			Year:          4,
			Difficulty:    4,
			Source:        quizmodels.SourceSample,
			Verified:      true,
		},
		{
			ID:            "pharm-002",
			Question:      "Which of the following antibiotics works by inhibiting bacterial cell wall synthesis?",
			Options:       quizmodels.OptionList{"Azithromycin", "Ciprofloxacin", "Vancomycin", "Doxycycline", "Gentamicin"},
			CorrectAnswer: 2,
			Explanation:   "Vancomycin binds the D-Ala-D-Ala terminus of peptidoglycan precursors, blocking cell wall synthesis. Macrolides, tetracyclines, and aminoglycosides act on the ribosome; fluoroquinolones inhibit DNA gyrase.",
			Category:      "pharmacology",
			Subcategory:   "antimicrobials",
			Year:          1,
			Difficulty:    1,
			Source:        quizmodels.SourceUNEPriority,
			Verified:      true,
		},
		// Gastroenterology
		{
			ID:            "gastro-001",
			Question:      "A 40-year-old woman presents with right upper quadrant pain after fatty meals, fever, and a positive Murphy's sign. What is the most appropriate initial imaging study?",
			Options:       quizmodels.OptionList{"Abdominal CT with contrast", "Right upper quadrant ultrasound", "HIDA scan", "MRCP", "Plain abdominal radiograph"},
			CorrectAnswer: 1,
			Explanation:   "Right upper quadrant ultrasound is the initial study for suspected acute cholecystitis. It is sensitive for gallstones, wall thickening, and pericholecystic fluid. HIDA is reserved for equivocal ultrasound findings.",
			Category:      "gastroenterology",
			Subcategory:   "biliary",
			Year:          3,
			Difficulty:    2,
			Source:        quizmodels.SourceUNEPriority,
			Verified:      true,
		},
		{
			ID:            "gastro-002",
			Question:      "A 55-year-old man with cirrhosis presents with hematemesis. After stabilization, endoscopy confirms bleeding esophageal varices. Which medication should be started to reduce portal pressure?",
			Options:       quizmodels.OptionList{"Omeprazole", "Octreotide", "Metoclopramide", "Ondansetron", "Propranolol"},
			CorrectAnswer: 1,
			Explanation:   "Octreotide, a somatostatin analogue, causes splanchnic vasoconstriction and lowers portal pressure in acute variceal bleeding. Non-selective beta-blockers such as propranolol are for secondary prophylaxis, not the acute episode.",
			Category:      "gastroenterology",
			Subcategory:   "hepatology",
			Year:          4,
			Difficulty:    3,
			Source:        quizmodels.SourceSample,
			Verified:      true,
		},
	}
}
