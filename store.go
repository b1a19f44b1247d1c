package main

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	storeObject   = "demo"
	storeProperty = "last"
)

// demoState is what the demo remembers between runs.
type demoState struct {
	Text    string `yaml:"text"`
	Trigger string `yaml:"trigger"`
}

// demoStore persists demoState. A nil manager keeps it in memory only.
type demoStore struct {
	manager *gdata.Manager
}

func openDemoStore(appName string) *demoStore {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("Store: persistence disabled: %v", err)
		return &demoStore{}
	}
	return &demoStore{manager: m}
}

func (s *demoStore) Load() (demoState, bool, error) {
	if s == nil || s.manager == nil {
		return demoState{}, false, nil
	}
	if !s.manager.ObjectPropExists(storeObject, storeProperty) {
		return demoState{}, false, nil
	}
	data, err := s.manager.LoadObjectProp(storeObject, storeProperty)
	if err != nil {
		return demoState{}, false, fmt.Errorf("store: load: %w", err)
	}
	var st demoState
	if err := yaml.Unmarshal(data, &st); err != nil {
		return demoState{}, false, fmt.Errorf("store: unmarshal: %w", err)
	}
	return st, true, nil
}

func (s *demoStore) Save(st demoState) error {
	if s == nil || s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(st)
	if err != nil {
		return fmt.Errorf("store: marshal: %w", err)
	}
	if err := s.manager.SaveObjectProp(storeObject, storeProperty, data); err != nil {
		return fmt.Errorf("store: save: %w", err)
	}
	return nil
}
