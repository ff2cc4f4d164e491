package v1

import metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

const (
	APIVersion = "dcl.dev.djcass44/v1"
	Kind       = "ChangelogEntry"
)

type ChangelogEntrySpec struct {
	Package       string   `json:"package"`
	Version       string   `json:"version"`
	Distributions []string `json:"distributions,omitempty"`
	Urgency       string   `json:"urgency,omitempty"`
	Changes       []string `json:"changes"`
	Maintainer    string   `json:"maintainer,omitempty"`
	Date          string   `json:"date,omitempty"`
}

type ChangelogEntry struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec ChangelogEntrySpec `json:"spec"`
}
